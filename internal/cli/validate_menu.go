package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/aajkakhana/internal/services"
)

func RunValidateMenuCommand(out io.Writer, path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("menu path is required")
	}

	cycle, err := services.LoadMenuCycle(path)
	if err != nil {
		return err
	}

	dinners := 0
	for _, day := range cycle.Days() {
		if day.HasDinner() {
			dinners++
		}
	}

	fmt.Fprintf(out, "✅ %s is valid\n", path)
	fmt.Fprintf(out, "%d days, %d dinners\n", cycle.Len(), dinners)
	return nil
}
