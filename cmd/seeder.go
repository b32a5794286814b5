package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			clearSeedData(db)
		}

		seedLookups(db)
		seedApps(db)
		seedUsers(db, cfg.Security.BCryptCost)

		fmt.Println("Seeding complete")
	},
}

func clearSeedData(db *gorm.DB) {
	tables := []string{
		"tr_employee_satisfaction_audit",
		"tr_employee_satisfaction",
		"sessions",
		"users",
		"mst_employee",
		"mst_apps",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("failed to clear %s: %v", table, err)
		}
	}
	fmt.Println("Cleared existing data")
}

func seedLookups(db *gorm.DB) {
	lookups := map[string][]string{
		"mst_company":           {"Alora Indonesia", "Alora Logistics"},
		"mst_department":        {"Human Resources", "Finance", "Engineering", "Operations"},
		"mst_position":          {"Staff", "Supervisor", "Manager", "Director"},
		"mst_job_level":         {"Staff", "Senior Staff", "Supervisor", "Manager", "Senior Manager"},
		"mst_employment_status": {"Permanent", "Contract", "Probation", "Internship"},
		"mst_education_level":   {"SMA/SMK", "D3", "S1", "S2"},
		"mst_religion":          {"Islam", "Kristen", "Katolik", "Hindu", "Buddha", "Konghucu"},
		"mst_bank":              {"BCA", "Mandiri", "BNI", "BRI"},
	}

	columns := map[string]string{
		"mst_company":           "company_name",
		"mst_department":        "department_name",
		"mst_position":          "position_name",
		"mst_job_level":         "job_level_name",
		"mst_employment_status": "employment_status_name",
		"mst_education_level":   "education_level_name",
		"mst_religion":          "religion_name",
		"mst_bank":              "bank_name",
	}

	for table, names := range lookups {
		column := columns[table]
		for _, name := range names {
			var exists int
			row := db.Raw(fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ?", table, column), name).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(fmt.Sprintf("INSERT INTO %s (%s, is_active) VALUES (?, true)", table, column), name).Error; err != nil {
				log.Fatalf("failed to seed %s row %s: %v", table, name, err)
			}
		}
		fmt.Println("Seeded lookup table:", table)
	}
}

func seedApps(db *gorm.DB) {
	appRows := []struct {
		Name        string
		Description string
		Href        string
		MinRole     string
		SortOrder   int
	}{
		{"Employee Satisfaction Survey", "Quarterly satisfaction survey", "/satisfaction", "employee", 1},
		{"My Profile", "View and update your employee profile", "/profile", "employee", 2},
		{"Employee Directory", "Browse employee master data", "/employees", "hr", 3},
		{"Survey Dashboard", "Satisfaction survey statistics", "/satisfaction/stats", "hr", 4},
		{"User Administration", "Manage accounts and roles", "/admin/users", "admin", 5},
	}

	for _, app := range appRows {
		var exists int
		row := db.Raw("SELECT 1 FROM mst_apps WHERE name = ?", app.Name).Row()
		if err := row.Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec(
			"INSERT INTO mst_apps (name, description, href, min_role, sort_order, is_active, created_at) VALUES (?, ?, ?, ?, ?, true, now())",
			app.Name, app.Description, app.Href, app.MinRole, app.SortOrder,
		).Error; err != nil {
			log.Fatalf("failed to seed app %s: %v", app.Name, err)
		}
		fmt.Println("Seeded app:", app.Name)
	}
}

func seedUsers(db *gorm.DB, bcryptCost int) {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcryptCost)

	userRows := []struct {
		Email string
		Name  string
		Role  string
	}{
		{"budi@alora.id", "Budi Santoso", "employee"},
		{"sari.hr@alora.id", "Sari Wijaya", "hr"},
		{"admin@alora.id", "Portal Admin", "admin"},
	}

	for _, u := range userRows {
		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("user already exists:", u.Email)
			continue
		}

		if err := db.Exec(
			"INSERT INTO users (email, name, password_hash, role, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now())",
			u.Email, u.Name, string(hash), u.Role,
		).Error; err != nil {
			log.Fatalf("failed to insert user %s: %v", u.Email, err)
		}

		var employeeExists int
		row = db.Raw("SELECT 1 FROM mst_employee WHERE email = ?", u.Email).Row()
		if err := row.Scan(&employeeExists); err != nil {
			if err := db.Exec(
				"INSERT INTO mst_employee (full_name, email, is_deleted, created_at, updated_at) VALUES (?, ?, false, now(), now())",
				u.Name, u.Email,
			).Error; err != nil {
				log.Fatalf("failed to insert employee for %s: %v", u.Email, err)
			}
		}

		fmt.Println("Seeded user:", u.Email, "role:", u.Role)
	}
}
