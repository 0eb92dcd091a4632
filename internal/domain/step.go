package domain

// Step этап процесса бронирования
type Step string

const (
	StepRoomSelection    Step = "room_selection"
	StepServiceSelection Step = "service_selection"
	StepCheckout         Step = "checkout"
	StepConfirmation     Step = "confirmation"
)

// allowedTransitions допустимые переходы между этапами.
// Назад можно всегда, вперёд только на следующий этап.
var allowedTransitions = map[Step][]Step{
	StepRoomSelection:    {StepRoomSelection, StepServiceSelection},
	StepServiceSelection: {StepRoomSelection, StepServiceSelection, StepCheckout},
	StepCheckout:         {StepRoomSelection, StepServiceSelection, StepCheckout, StepConfirmation},
	StepConfirmation:     {StepRoomSelection},
}

// IsValid returns true if the step is one of the known stages
func (s Step) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Path путь входа на этап. Для подтверждения путь дополняется кодом бронирования.
func (s Step) Path() string {
	switch s {
	case StepServiceSelection:
		return "/booking/services"
	case StepCheckout:
		return "/booking/checkout"
	case StepConfirmation:
		return "/booking/success"
	default:
		return "/"
	}
}

// RequiresRoom returns true if the step cannot be entered without a chosen room
func (s Step) RequiresRoom() bool {
	return s == StepServiceSelection || s == StepCheckout
}

// CanTransition проверяет, разрешён ли переход from -> to
func CanTransition(from, to Step) bool {
	if from == "" {
		from = StepRoomSelection
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// EnterStep проверяет условие входа на этап.
// Возвращает этап, на который нужно перенаправить, и false, если вход запрещён.
func EnterStep(step Step, draft *BookingDraft) (Step, bool) {
	if step.RequiresRoom() && (draft == nil || !draft.HasRoom()) {
		return StepRoomSelection, false
	}
	return step, true
}
