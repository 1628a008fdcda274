package cli

import (
	"github.com/charmbracelet/huh"
)

// confirmAction asks the user to confirm a destructive operation.
func confirmAction(description string) (bool, error) {
	var confirm bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Confirm").
				Description(description).
				Value(&confirm),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirm, nil
}
