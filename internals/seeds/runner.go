package seeds

import (
	cmsSeeds "lessoncms_backend/internals/seeds/cms"
	userSeeds "lessoncms_backend/internals/seeds/users"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Users
	userSeeds.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Demo content
	cmsSeeds.SeedProgramsFromJSON(db, "internals/seeds/cms/data_programs.json")
}
