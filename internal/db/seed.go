package db

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/types"
)

type blueprintSeed struct {
	Name          string            `yaml:"name"`
	Creator       string            `yaml:"creator"`
	Program       string            `yaml:"program"`
	Extension     string            `yaml:"extension"`
	DownloadLink  string            `yaml:"download_link"`
	StandardPrice int64             `yaml:"standard_price"`
	SalePrice     int64             `yaml:"sale_price"`
	Details       map[string]string `yaml:"details"`
}

type seedFile struct {
	Blueprints []blueprintSeed `yaml:"blueprints"`
}

// SeedBlueprints loads the blueprint catalog from a yaml file. It only runs
// against an empty catalog so restarts do not duplicate rows.
func SeedBlueprints(db *gorm.DB, log *logger.Logger, path string) error {
	var count int64
	if err := db.Model(&types.Blueprint{}).Count(&count).Error; err != nil {
		return fmt.Errorf("Failed to count blueprints: %w", err)
	}
	if count > 0 {
		log.Debug("Blueprint catalog already seeded, skipping", "rows", count)
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Blueprint seed file not found, starting with empty catalog", "path", path)
			return nil
		}
		return fmt.Errorf("Failed to read seed file: %w", err)
	}

	var seeds seedFile
	if err := yaml.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("Failed to parse seed file: %w", err)
	}
	if len(seeds.Blueprints) == 0 {
		return nil
	}

	blueprints := make([]*types.Blueprint, 0, len(seeds.Blueprints))
	for _, seed := range seeds.Blueprints {
		bp := &types.Blueprint{
			Name:          seed.Name,
			Creator:       seed.Creator,
			Program:       seed.Program,
			Extension:     seed.Extension,
			DownloadLink:  seed.DownloadLink,
			StandardPrice: seed.StandardPrice,
			SalePrice:     seed.SalePrice,
		}
		if len(seed.Details) > 0 {
			raw, mErr := json.Marshal(seed.Details)
			if mErr != nil {
				return fmt.Errorf("Failed to encode blueprint details: %w", mErr)
			}
			bp.Details = datatypes.JSON(raw)
		}
		blueprints = append(blueprints, bp)
	}

	if err := db.Create(&blueprints).Error; err != nil {
		return fmt.Errorf("Failed to seed blueprints: %w", err)
	}
	log.Info("Seeded blueprint catalog", "rows", len(blueprints))
	return nil
}
