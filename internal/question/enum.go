package question

type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

var AllOptions = []Option{OptionA, OptionB, OptionC, OptionD}

func (o Option) IsValid() bool {
	for _, v := range AllOptions {
		if o == v {
			return true
		}
	}
	return false
}

type Hardness string

const (
	HardnessEasy   Hardness = "easy"
	HardnessMedium Hardness = "medium"
	HardnessHard   Hardness = "hard"
)

var AllHardness = []Hardness{HardnessEasy, HardnessMedium, HardnessHard}

func (h Hardness) IsValid() bool {
	for _, v := range AllHardness {
		if h == v {
			return true
		}
	}
	return false
}
