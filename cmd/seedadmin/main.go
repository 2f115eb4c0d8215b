// Crea o restablece la primera cuenta admin.
// Uso: SEED_ADMIN_PASSWORD=... go run ./cmd/seedadmin
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/edukshare-max/fastapi-backend/internal/config"
	"github.com/edukshare-max/fastapi-backend/internal/infra"
	"github.com/edukshare-max/fastapi-backend/internal/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	username := envOr("SEED_ADMIN_USERNAME", "admin")
	campus := envOr("SEED_ADMIN_CAMPUS", "rectoria")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("SEED_ADMIN_PASSWORD es requerido")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := infra.NewCosmosDatabase(cfg.CosmosURI, cfg.CosmosDatabase)
	if err != nil {
		log.Fatalf("cosmos connect error: %v", err)
	}

	admin := model.UsuarioAdmin{
		ID:             model.UsuarioID(username, campus),
		Username:       username,
		Email:          envOr("SEED_ADMIN_EMAIL", "admin@uagro.mx"),
		PasswordHash:   string(hash),
		NombreCompleto: "Administrador del Sistema",
		Rol:            model.RolAdmin,
		Campus:         campus,
		Departamento:   "Sistemas",
		Activo:         true,
		FechaCreacion:  time.Now().UTC().Format(time.RFC3339),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = db.Collection(cfg.ContainerUsuarios).ReplaceOne(ctx,
		bson.D{{Key: "id", Value: admin.ID}},
		admin,
		options.Replace().SetUpsert(true))
	if err != nil {
		log.Fatalf("upsert error: %v", err)
	}

	fmt.Printf("✅ Usuario admin '%s' creado/actualizado (%s)\n", username, admin.ID)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
