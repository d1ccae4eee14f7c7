package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	userUsecase "github.com/allisson/user-secrets/internal/user/usecase"
)

// RunCreateUser registers a new user. When the password is empty the command
// prompts for it interactively. Outputs the user id and email in either text
// or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userUseCase userUsecase.UseCase,
	logger *slog.Logger,
	io IOTuple,
	name string,
	email string,
	password string,
	format string,
) error {
	logger.Info("creating new user", slog.String("email", email))

	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to get password: %w", err)
		}
	}

	user, err := userUseCase.RegisterUser(ctx, userUsecase.RegisterUserInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		writeJSON(io.Writer, map[string]string{
			"user_id": user.ID.String(),
			"name":    user.Name,
			"email":   user.Email,
		})
	} else {
		_, _ = fmt.Fprintln(io.Writer, "\nUser created successfully!")
		_, _ = fmt.Fprintf(io.Writer, "User ID: %s\n", user.ID.String())
		_, _ = fmt.Fprintf(io.Writer, "Email: %s\n", user.Email)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email),
	)

	return nil
}

// promptForPassword reads the password from the interactive reader.
func promptForPassword(io IOTuple) (string, error) {
	reader := bufio.NewReader(io.Reader)

	_, _ = fmt.Fprint(io.Writer, "Enter password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}
