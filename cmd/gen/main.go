package main

import (
	"portal/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AffiliateModel{},
		model.OnboardingSessionModel{},
		model.OnboardingAnswerModel{},
		model.LocationServiceOverrideModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
