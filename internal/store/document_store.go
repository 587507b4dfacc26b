package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"menodiary/internal/models"
)

// The whole application state is persisted as one document under this
// key. There is no schema version: forward compatibility comes from
// decoding the stored profile on top of the canonical defaults.
const documentKey = "meno_diary_v1"

type documentRow struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (documentRow) TableName() string {
	return "documents"
}

type persistedState struct {
	Profile  json.RawMessage            `json:"profile"`
	Logs     map[string]models.DailyLog `json:"logs"`
	Revision string                     `json:"revision,omitempty"`
	SavedAt  string                     `json:"savedAt,omitempty"`
}

// DocumentStore is the single owner of the persisted AppState. Reads
// degrade to defaults and writes are dropped on failure; storage errors
// are logged but never surfaced to callers.
type DocumentStore struct {
	database *gorm.DB
	logger   *zap.Logger
}

func NewDocumentStore(database *gorm.DB, logger *zap.Logger) (*DocumentStore, error) {
	if err := database.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}
	return &DocumentStore{
		database: database,
		logger:   logger,
	}, nil
}

func (store *DocumentStore) Load() models.AppState {
	row := documentRow{}
	result := store.database.Where("key = ?", documentKey).Limit(1).Find(&row)
	if result.Error != nil {
		store.logger.Warn("load document failed, starting from defaults", zap.Error(result.Error))
		return models.NewAppState()
	}
	if result.RowsAffected == 0 {
		return models.NewAppState()
	}
	return store.decode(row.Value)
}

func (store *DocumentStore) decode(raw []byte) models.AppState {
	state := models.NewAppState()

	parsed := persistedState{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		store.logger.Warn("stored document unreadable, starting from defaults", zap.Error(err))
		return state
	}

	// Stored profile fields override the defaults; fields added after
	// the document was written keep their default values.
	profile := models.DefaultProfile()
	if len(parsed.Profile) > 0 {
		if err := json.Unmarshal(parsed.Profile, &profile); err != nil {
			store.logger.Warn("stored profile unreadable, using defaults", zap.Error(err))
			profile = models.DefaultProfile()
		}
	}
	state.Profile = profile

	if parsed.Logs != nil {
		state.Logs = parsed.Logs
	}
	return state
}

func (store *DocumentStore) Save(state models.AppState) {
	profileRaw, err := json.Marshal(state.Profile)
	if err != nil {
		store.logger.Warn("serialize profile failed, dropping write", zap.Error(err))
		return
	}

	logs := state.Logs
	if logs == nil {
		logs = map[string]models.DailyLog{}
	}

	raw, err := json.Marshal(persistedState{
		Profile:  profileRaw,
		Logs:     logs,
		Revision: uuid.NewString(),
		SavedAt:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		store.logger.Warn("serialize document failed, dropping write", zap.Error(err))
		return
	}

	row := documentRow{Key: documentKey, Value: raw}
	err = store.database.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&row).Error
	})
	if err != nil {
		store.logger.Warn("save document failed, dropping write", zap.Error(err))
	}
}

// Clear erases the document; the next Load starts from onboarding.
func (store *DocumentStore) Clear() error {
	return store.database.Where("key = ?", documentKey).Delete(&documentRow{}).Error
}
