package commands

import (
	"context"
	"fmt"
	"log/slog"

	orgUsecase "github.com/allisson/user-secrets/internal/org/usecase"
)

// RunCreateOrg creates a new organization and outputs its id in either text or
// JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateOrg(
	ctx context.Context,
	orgUseCase orgUsecase.UseCase,
	logger *slog.Logger,
	io IOTuple,
	name string,
	format string,
) error {
	logger.Info("creating new organization", slog.String("name", name))

	org, err := orgUseCase.CreateOrganization(ctx, orgUsecase.CreateOrganizationInput{
		Name: name,
	})
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	if format == "json" {
		writeJSON(io.Writer, map[string]string{
			"org_id": org.ID.String(),
			"name":   org.Name,
		})
	} else {
		_, _ = fmt.Fprintln(io.Writer, "\nOrganization created successfully!")
		_, _ = fmt.Fprintf(io.Writer, "Organization ID: %s\n", org.ID.String())
		_, _ = fmt.Fprintf(io.Writer, "Name: %s\n", org.Name)
	}

	logger.Info("organization created successfully",
		slog.String("org_id", org.ID.String()),
		slog.String("name", org.Name),
	)

	return nil
}
