package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定。起動時に一度だけ読み込む。
type Config struct {
	Port string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int

	JWTSecret     string
	AccessTTL     time.Duration
	ResetTokenTTL time.Duration

	// 画像ストレージのルートと、保存パスを配信するURLプレフィックス
	StorageDir string
	StorageURL string

	GoEnv string

	Pagination Pagination
	DateFormat DateFormat
}

// Pagination はper_pageバケット番号を実際のページサイズに変換する。
// 未知のバケットは MaxRecord にフォールバック。
type Pagination struct {
	PerPage   []int
	MaxRecord int
}

// DateFormat は日付フィルタの規約。クライアントが送る日付レイアウトと、
// start_date未指定時のデフォルト下限。
type DateFormat struct {
	Input        string
	DefaultStart string
}

// Load は環境変数から設定を読み込む。
func Load() (Config, error) {
	pgPort, err := mustAtoi("POSTGRES_PORT")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     pgPort,

		JWTSecret:     os.Getenv("JWT_SECRET"),
		AccessTTL:     24 * time.Hour,
		ResetTokenTTL: 30 * time.Minute,

		StorageDir: getenv("STORAGE_DIR", "storage"),
		StorageURL: getenv("STORAGE_URL", "/storage"),

		GoEnv: getenv("GO_ENV", "dev"),

		Pagination: Pagination{
			PerPage:   []int{10, 25, 50, 100},
			MaxRecord: 100,
		},
		DateFormat: DateFormat{
			Input:        "02/01/2006",
			DefaultStart: "01/01/2000",
		},
	}

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.PostgresUser == "" {
		return Config{}, fmt.Errorf("POSTGRES_USER is required")
	}
	if cfg.PostgresPassword == "" {
		return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	if cfg.PostgresDB == "" {
		return Config{}, fmt.Errorf("POSTGRES_DB is required")
	}
	if cfg.PostgresHost == "" {
		return Config{}, fmt.Errorf("POSTGRES_HOST is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// PageSize はper_pageバケット番号をページサイズに解決する。
func (p Pagination) PageSize(bucket int) int {
	if bucket < 0 || bucket >= len(p.PerPage) {
		return p.MaxRecord
	}
	return p.PerPage[bucket]
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
