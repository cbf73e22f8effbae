package appointment

import "strings"

const (
	StepClient  = 1
	StepService = 2
	StepSlot    = 3
)

// CanProceed reports whether the wizard may leave step with the given form.
// Unknown steps never proceed.
func CanProceed(step int, form FormState) bool {
	switch step {
	case StepClient:
		return strings.TrimSpace(form.ClientName) != "" && strings.TrimSpace(form.ClientPhone) != ""
	case StepService:
		return form.SelectedService != nil
	case StepSlot:
		return form.SelectedDate != nil && form.SelectedTime != ""
	default:
		return false
	}
}
