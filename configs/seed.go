package configs

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Amrragab78/the-modern-table-sub000/entity"
)

// SeedAdmin creates the first back-office account from env.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedMenu loads the starter catalog on an empty menu table.
func SeedMenu(db *gorm.DB) error {
	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	price := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}
	items := []entity.MenuItem{
		{Name: "Burrata & Heirloom Tomato", Description: "Creamy burrata, basil oil, aged balsamic", Price: price("14.00"), Category: "Starters"},
		{Name: "Crispy Calamari", Description: "Lemon aioli, pickled chili", Price: price("13.00"), Category: "Starters"},
		{Name: "Pan-Seared Salmon", Description: "Charred broccolini, beurre blanc", Price: price("28.00"), Category: "Mains"},
		{Name: "Braised Short Rib", Description: "Parmesan polenta, gremolata", Price: price("32.00"), Category: "Mains"},
		{Name: "Wild Mushroom Risotto", Description: "Arborio rice, truffle oil, pecorino", Price: price("24.00"), Category: "Mains"},
		{Name: "Tiramisu", Description: "Espresso-soaked ladyfingers, mascarpone", Price: price("11.00"), Category: "Desserts"},
		{Name: "Dark Chocolate Torte", Description: "Raspberry coulis, crème fraîche", Price: price("12.00"), Category: "Desserts"},
		{Name: "Espresso", Description: "Double shot", Price: price("4.00"), Category: "Drinks"},
		{Name: "House Lemonade", Description: "Fresh-squeezed, mint", Price: price("5.00"), Category: "Drinks"},
	}
	return db.Create(&items).Error
}
