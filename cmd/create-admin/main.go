package main

import (
	"bufio"
	"context"
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
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	adminRepo := repository.NewAdminRepository(cfg.DataDir, log)
	userRepo := repository.NewUserRepository(cfg.DataDir, log)

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin Account ===")

	fmt.Print("Enter Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		fmt.Println("Error: Username is required")
		return
	}
	if strings.ContainsAny(username, ",|;") {
		fmt.Println("Error: Username must not contain ',', '|' or ';'")
		return
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println()
	if password == "" {
		fmt.Println("Error: Password is required")
		return
	}
	if strings.ContainsAny(password, ",|;") {
		fmt.Println("Error: Password must not contain ',', '|' or ';'")
		return
	}

	fmt.Print("Hash password before storing? (y/N): ")
	answer, _ := reader.ReadString('\n')
	if strings.EqualFold(strings.TrimSpace(answer), "y") {
		hashed, err := service.HashPassword(password, cfg.BcryptCost)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash password")
		}
		password = hashed
	}

	admins, err := adminRepo.ListAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read admin store")
	}
	for _, a := range admins {
		if strings.EqualFold(a.Username, username) {
			fmt.Printf("Error: Admin '%s' already exists\n", username)
			return
		}
	}

	if err := adminRepo.Append(ctx, model.Admin{Username: username, Password: password}); err != nil {
		log.Fatal().Err(err).Msg("Failed to write admin store")
	}
	account := model.UserAccount{Role: model.RoleAdmin, Username: username, Password: password}
	if err := userRepo.Append(ctx, account); err != nil {
		log.Fatal().Err(err).Msg("Failed to write users store")
	}

	fmt.Printf("\nSuccess! Admin '%s' created in %s\n", username, cfg.DataDir)
}
