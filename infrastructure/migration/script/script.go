package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/school-portal-api/infrastructure/database/postgres"
	"github.com/vfg2006/school-portal-api/internal/config"
)

// schemaStatements cria o esquema do portal; todas as instruções são idempotentes
var schemaStatements = []struct {
	name string
	sql  string
}{
	{"schools", `
		CREATE TABLE IF NOT EXISTS schools (
			id                          VARCHAR(16) PRIMARY KEY,
			name                        TEXT NOT NULL,
			slug                        TEXT NOT NULL UNIQUE,
			cnpj                        TEXT,
			street                      TEXT NOT NULL DEFAULT '',
			number                      TEXT NOT NULL DEFAULT '',
			neighborhood                TEXT NOT NULL DEFAULT '',
			city                        TEXT NOT NULL DEFAULT '',
			state                       TEXT NOT NULL DEFAULT '',
			zip_code                    TEXT NOT NULL DEFAULT '',
			contact_email               TEXT,
			logo_url                    TEXT,
			primary_color               TEXT,
			secondary_color             TEXT,
			website_url                 TEXT,
			erp_url                     TEXT,
			lms_url                     TEXT,
			helpdesk_url                TEXT,
			active                      BOOLEAN NOT NULL DEFAULT TRUE,
			market_analysis             JSONB,
			market_analysis_computed_at TIMESTAMPTZ,
			created_at                  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at                  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`},
	{"schools_market_analysis_idx", `
		CREATE INDEX IF NOT EXISTS schools_market_analysis_computed_at_idx
			ON schools (market_analysis_computed_at) WHERE active`},
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id            SERIAL PRIMARY KEY,
			name          TEXT NOT NULL,
			lastname      TEXT NOT NULL DEFAULT '',
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			active        BOOLEAN NOT NULL DEFAULT TRUE,
			role_id       INTEGER NOT NULL CHECK (role_id IN (1, 2, 3)),
			school_id     VARCHAR(16) REFERENCES schools (id),
			avatar_url    TEXT,
			deleted       BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at    TIMESTAMPTZ,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`},
	{"banners", `
		CREATE TABLE IF NOT EXISTS banners (
			id         VARCHAR(16) PRIMARY KEY,
			title      TEXT NOT NULL,
			message    TEXT NOT NULL DEFAULT '',
			image_url  TEXT,
			link_url   TEXT,
			audience   TEXT NOT NULL DEFAULT 'all' CHECK (audience IN ('all', 'admin', 'manager', 'user')),
			school_id  VARCHAR(16) REFERENCES schools (id) ON DELETE CASCADE,
			active     BOOLEAN NOT NULL DEFAULT TRUE,
			starts_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			ends_at    TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`},
	{"banners_active_idx", `
		CREATE INDEX IF NOT EXISTS banners_active_window_idx
			ON banners (starts_at, ends_at) WHERE active`},
}

func applySchema(tx *sql.Tx) error {
	for _, statement := range schemaStatements {
		startTime := time.Now()
		if _, err := tx.Exec(statement.sql); err != nil {
			logrus.WithError(err).WithField("statement", statement.name).Error("Erro ao aplicar instrução")
			return err
		}
		logrus.WithFields(logrus.Fields{
			"statement": statement.name,
			"elapsed":   time.Since(startTime).String(),
		}).Info("Instrução aplicada")
	}
	return nil
}

// seedAdmin cria o primeiro administrador caso ainda não exista nenhum
func seedAdmin(tx *sql.Tx, email, password string) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE role_id = 1 AND NOT deleted)`).Scan(&exists); err != nil {
		return err
	}
	if exists {
		logrus.Info("Administrador já cadastrado, seed ignorado")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO users (name, lastname, email, password_hash, active, role_id) VALUES ($1, $2, $3, $4, TRUE, 1)`,
		"Administrador", "", strings.ToLower(email), string(hash),
	)
	if err != nil {
		return err
	}

	logrus.WithField("email", email).Info("Administrador inicial criado")
	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})

	adminEmail := flag.String("admin-email", os.Getenv("ADMIN_EMAIL"), "email do administrador inicial")
	adminPassword := flag.String("admin-password", os.Getenv("ADMIN_PASSWORD"), "senha do administrador inicial")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configurações")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := applySchema(tx); err != nil {
			return err
		}
		if *adminEmail == "" || *adminPassword == "" {
			logrus.Info("ADMIN_EMAIL/ADMIN_PASSWORD não informados, seed ignorado")
			return nil
		}
		return seedAdmin(tx, *adminEmail, *adminPassword)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração revertida")
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Migração concluída")
}
