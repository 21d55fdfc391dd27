package equipment

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Record is the database row of one equipment type.
type Record struct {
	ID         int    `gorm:"primaryKey;autoIncrement:false"`
	Name       string `gorm:"size:64"`
	Class      string `gorm:"size:32;not null;index"`
	MoveMethod string `gorm:"size:32;not null"`
	MovPoints  int
	Ammo       int
	Fuel       int
	Icon       string `gorm:"size:128"`
}

func (Record) TableName() string {
	return "equipment"
}

// Store keeps an equipment catalog in a SQLite database.
type Store struct {
	DB *gorm.DB
}

// OpenStore opens (or creates) the SQLite database at path and migrates the
// equipment table. An empty path opens a private in-memory database.
func OpenStore(path string) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open equipment database: %w", err)
	}
	if path == "" {
		// every connection to file::memory: sees its own database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql interface: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate equipment table: %w", err)
	}
	log.Debug().Str("path", dsn).Msg("equipment store opened")
	return &Store{DB: db}, nil
}

// Save upserts every entry of t.
func (s *Store) Save(t Table) error {
	if len(t) == 0 {
		return nil
	}
	records := make([]Record, 0, len(t))
	for _, id := range t.IDs() {
		st := t[id]
		records = append(records, Record{
			ID:         st.ID,
			Name:       st.Name,
			Class:      st.Class.String(),
			MoveMethod: st.MoveMethod.String(),
			MovPoints:  st.MovPoints,
			Ammo:       st.Ammo,
			Fuel:       st.Fuel,
			Icon:       st.Icon,
		})
	}
	if err := s.DB.Save(&records).Error; err != nil {
		return fmt.Errorf("failed to save equipment: %w", err)
	}
	return nil
}

// Load reads the whole equipment table into memory.
func (s *Store) Load() (Table, error) {
	var records []Record
	if err := s.DB.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load equipment: %w", err)
	}
	t := make(Table, len(records))
	for _, r := range records {
		class, err := ParseUnitClass(r.Class)
		if err != nil {
			return nil, fmt.Errorf("equipment %d: %w", r.ID, err)
		}
		method, err := ParseMoveMethod(r.MoveMethod)
		if err != nil {
			return nil, fmt.Errorf("equipment %d: %w", r.ID, err)
		}
		t[r.ID] = Stats{
			ID:         r.ID,
			Name:       r.Name,
			Class:      class,
			MoveMethod: method,
			MovPoints:  r.MovPoints,
			Ammo:       r.Ammo,
			Fuel:       r.Fuel,
			Icon:       r.Icon,
		}
	}
	return t, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Close()
}
