package migration

import (
	"github.com/devranjit/salontraining-server-sub001/internal/domain"
	"gorm.io/gorm"
)

// Run auto-migrates the entity tables and the lifecycle tables owned by
// this service
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		// Directory entities
		&domain.Trainer{},
		&domain.Event{},
		&domain.Job{},
		&domain.Blog{},
		&domain.Education{},
		&domain.Product{},
		&domain.MemberVideo{},
		&domain.Category{},
		&domain.User{},
		&domain.Contest{},
		&domain.Banner{},
		&domain.Review{},
		// Lifecycle tables, owned exclusively by this service
		&domain.VersionRecord{},
		&domain.RecycleBinItem{},
	)
}
