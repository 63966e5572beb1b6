package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/attendease/attendease/internal/config"
	"github.com/attendease/attendease/internal/logger"
	"github.com/attendease/attendease/internal/model"
	"github.com/attendease/attendease/internal/repository"
	"github.com/attendease/attendease/internal/service"
	"github.com/attendease/attendease/internal/validator"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	studentRepo := repository.NewStudentRepository(cfg.DataDir, log)
	professorRepo := repository.NewProfessorRepository(cfg.DataDir, log)
	userRepo := repository.NewUserRepository(cfg.DataDir, log)
	enrollment := service.NewEnrollmentService(studentRepo, professorRepo, userRepo, validator.New())

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create User Account ===")
	fmt.Println("Course list -> A: OOP, B: Physics, C: Elec, D: DSML, E: Math, F: Ecology")

	fmt.Print("Role (Student/Professor): ")
	roleInput, _ := reader.ReadString('\n')
	role := model.Role(strings.TrimSpace(roleInput))
	if role != model.RoleStudent && role != model.RoleProfessor {
		fmt.Println("Error: Role must be Student or Professor")
		return
	}

	fmt.Print("Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	fmt.Print("Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println()

	fmt.Print("Course codes (semicolon-separated): ")
	courses, _ := reader.ReadString('\n')
	courses = strings.TrimSpace(courses)

	req := model.CreateUserRequest{
		Username: username,
		Password: password,
		Role:     role,
		Courses:  courses,
	}
	if err := enrollment.CreateUser(ctx, req); err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			for field, msg := range ve.Fields {
				fmt.Printf("Error: %s: %s\n", field, msg)
			}
			return
		}
		log.Fatal().Err(err).Msg("Failed to create user")
	}

	fmt.Printf("\nSuccess! %s '%s' created in %s\n", role, username, cfg.DataDir)
}
