package database

import (
	"fmt"

	"github.com/simonindia/safety-api/internal/config"
	"github.com/simonindia/safety-api/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the fixed bootstrap data on first run: the two accounts, the
// initial projects, and the I-30059 subcontractor list. Each section only
// runs against an empty table, so restarts are no-ops.
func Seed(db *gorm.DB, cfg *config.BootstrapConfig, log *zap.Logger) error {
	if err := seedUsers(db, cfg, log); err != nil {
		return err
	}
	if err := seedProjects(db, log); err != nil {
		return err
	}
	return seedSubContractors(db, log)
}

func seedUsers(db *gorm.DB, cfg *config.BootstrapConfig, log *zap.Logger) error {
	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	users := []domain.User{
		{Username: cfg.AdminUsername, PasswordHash: string(hash), Role: domain.RoleAdmin},
		{Username: cfg.SafetyUsername, PasswordHash: string(hash), Role: domain.RoleSafety},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to create bootstrap users: %w", err)
	}

	log.Info("Created default admin and safety users",
		zap.String("admin", cfg.AdminUsername),
		zap.String("safety", cfg.SafetyUsername),
	)
	return nil
}

func seedProjects(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&domain.Project{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	projects := []domain.Project{
		{
			ProjectCode:              "I-30059",
			ProjectName:              "5th Evaporator",
			ProjectManagerContractor: "Biswa Ranjan Dash",
			ProjectManagerClient:     "PPL Manager",
			ClientName:               "PPL",
			Contractor:               "SIL",
		},
		{
			ProjectCode:              "I-2501F001",
			ProjectName:              "Sulphur Melting & Filtration Facility",
			ProjectManagerContractor: "Biswa Ranjan Dash",
			ProjectManagerClient:     "PPL Manager",
			ClientName:               "PPL",
			Contractor:               "SIL",
		},
		{
			ProjectCode:              "I-2501F002",
			ProjectName:              "23MW Power Plant TG-4, PPL",
			ProjectManagerContractor: "Biswa Ranjan Dash",
			ProjectManagerClient:     "PPL Manager",
			ClientName:               "PPL",
			Contractor:               "SIL",
		},
		{
			ProjectCode:              "I-2503F002",
			ProjectName:              "8000T Phosphoric Acid Tank, MCFL",
			ProjectManagerContractor: "Biswa Ranjan Dash",
			ProjectManagerClient:     "MCFL Manager",
			ClientName:               "MCFL",
			Contractor:               "SIL",
		},
	}
	if err := db.Create(&projects).Error; err != nil {
		return fmt.Errorf("failed to create default projects: %w", err)
	}

	log.Info("Created default projects", zap.Int("count", len(projects)))
	return nil
}

func seedSubContractors(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&domain.SubContractor{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count subcontractors: %w", err)
	}
	if count > 0 {
		return nil
	}

	names := []string{
		"RRPL", "CHEMDIST", "KRUPANJAL", "BBGC", "FRIENDS",
		"RK ENGG", "BIMAL", "M SQUARE", "CUMI", "SAMANTARAY",
	}
	subs := make([]domain.SubContractor, len(names))
	for i, name := range names {
		subs[i] = domain.SubContractor{Name: name, ProjectCode: "I-30059"}
	}
	if err := db.Create(&subs).Error; err != nil {
		return fmt.Errorf("failed to create default subcontractors: %w", err)
	}

	log.Info("Created default subcontractors for I-30059", zap.Int("count", len(subs)))
	return nil
}
