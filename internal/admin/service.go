package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/question-bank/internal/answer"
	"github.com/saulo-duarte/question-bank/internal/apperr"
	"github.com/saulo-duarte/question-bank/internal/category"
	"github.com/saulo-duarte/question-bank/internal/config"
	"github.com/saulo-duarte/question-bank/internal/question"
)

var (
	ErrCategoryExists   = apperr.Conflict("Category already exists")
	ErrCategoryNotFound = apperr.NotFound("Category not found")
	ErrQuestionNotFound = question.ErrQuestionNotFound
	ErrEmptyBatch       = apperr.BadRequest("At least one question is required")
	ErrEmptyName        = apperr.BadRequest("Category name is required")
)

type AdminService interface {
	CreateCategory(ctx context.Context, name string) (*category.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateQuestion(ctx context.Context, in question.QuestionInput) (*question.Question, error)
	CreateQuestionsBulk(ctx context.Context, in []question.QuestionInput) ([]*question.Question, error)
	ListQuestions(ctx context.Context) ([]*question.Question, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
}

type adminService struct {
	db           *gorm.DB
	categoryRepo category.CategoryRepository
	questionRepo question.QuestionRepository
}

func NewService(db *gorm.DB, categoryRepo category.CategoryRepository, questionRepo question.QuestionRepository) AdminService {
	return &adminService{
		db:           db,
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

func (s *adminService) CreateCategory(ctx context.Context, name string) (*category.Category, error) {
	log := config.WithContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	// Fast path only; the unique index decides under concurrency.
	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar categoria")
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	c := &category.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryExists
		}
		log.WithError(err).Error("Erro ao criar categoria")
		return nil, err
	}

	log.WithField("category_id", c.ID).Info("Categoria criada com sucesso")
	return c, nil
}

// DeleteCategory detaches referencing questions before removing the row.
func (s *adminService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx).WithField("category_id", id)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&question.Question{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			log.WithError(err).Error("Erro ao desvincular perguntas da categoria")
			return err
		}

		result := tx.Delete(&category.Category{}, "id = ?", id)
		if result.Error != nil {
			log.WithError(result.Error).Error("Erro ao deletar categoria")
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}

		log.Info("Categoria deletada com sucesso")
		return nil
	})
}

func (s *adminService) CreateQuestion(ctx context.Context, in question.QuestionInput) (*question.Question, error) {
	log := config.WithContext(ctx)

	if err := in.Validate(""); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, in.CategoryID, ""); err != nil {
		return nil, err
	}

	q := in.ToEntity()
	if err := s.questionRepo.Create(ctx, q); err != nil {
		log.WithError(err).Error("Erro ao criar pergunta")
		return nil, err
	}

	log.WithField("question_id", q.ID).Info("Pergunta criada com sucesso")
	return q, nil
}

// CreateQuestionsBulk validates the whole batch before writing and inserts
// it in one transaction, so either every question lands or none does.
func (s *adminService) CreateQuestionsBulk(ctx context.Context, in []question.QuestionInput) ([]*question.Question, error) {
	log := config.WithContext(ctx)

	if len(in) == 0 {
		return nil, ErrEmptyBatch
	}

	questions := make([]*question.Question, 0, len(in))
	for i := range in {
		suffix := question.ForQuestion(in[i].QuestionText)
		if err := in[i].Validate(suffix); err != nil {
			log.WithField("index", i).Warn("Lote de perguntas rejeitado")
			return nil, err
		}
		if err := s.checkCategory(ctx, in[i].CategoryID, suffix); err != nil {
			return nil, err
		}
		questions = append(questions, in[i].ToEntity())
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, q := range questions {
			if err := tx.Create(q).Error; err != nil {
				log.WithError(err).Error("Erro ao inserir pergunta do lote")
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithField("count", len(questions)).Info("Lote de perguntas criado com sucesso")
	return questions, nil
}

func (s *adminService) ListQuestions(ctx context.Context) ([]*question.Question, error) {
	questions, err := s.questionRepo.List(ctx, question.Filter{})
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao listar perguntas")
		return nil, err
	}
	return questions, nil
}

// DeleteQuestion removes the question together with every recorded answer to it.
func (s *adminService) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx).WithField("question_id", id)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&question.Question{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrQuestionNotFound
		}

		removed, err := answer.DeleteByQuestion(tx, id)
		if err != nil {
			log.WithError(err).Error("Erro ao deletar respostas da pergunta")
			return err
		}

		if err := tx.Delete(&question.Question{}, "id = ?", id).Error; err != nil {
			log.WithError(err).Error("Erro ao deletar pergunta")
			return err
		}

		log.WithField("deleted_answers", removed).Info("Pergunta deletada com sucesso")
		return nil
	})
}

func (s *adminService) checkCategory(ctx context.Context, id *uuid.UUID, suffix string) error {
	if id == nil {
		return nil
	}
	c, err := s.categoryRepo.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if c == nil {
		return apperr.BadRequest("Category does not exist" + suffix)
	}
	return nil
}
