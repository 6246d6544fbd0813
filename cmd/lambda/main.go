package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	_ "github.com/saulo-duarte/question-bank/docs"
	"github.com/saulo-duarte/question-bank/internal/config"
	"github.com/saulo-duarte/question-bank/internal/container"
	"github.com/saulo-duarte/question-bank/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	ctr, err := container.Bootstrap(context.Background())
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to bootstrap")
	}
	chiLambda = chiadapter.New(router.New(ctr))
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
