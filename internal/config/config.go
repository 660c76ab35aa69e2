package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config はサーバー起動時の設定
type Config struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
	PlanDelay      time.Duration // 旅行プラン生成の疑似処理時間
	ChatMinDelay   time.Duration // チャット応答の疑似処理時間（下限）
	ChatMaxDelay   time.Duration // チャット応答の疑似処理時間（上限）
	SessionTTL     time.Duration // チャットセッション・ウィッシュリストの保持期間
}

// Load は.envと環境変数から設定を読み込む
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ .env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv は環境変数のみから設定を組み立てる
func FromEnv() (*Config, error) {
	planDelay, err := durationMillis("PLAN_DELAY_MS", 2000)
	if err != nil {
		return nil, err
	}
	chatMin, err := durationMillis("CHAT_MIN_DELAY_MS", 1000)
	if err != nil {
		return nil, err
	}
	chatMax, err := durationMillis("CHAT_MAX_DELAY_MS", 3000)
	if err != nil {
		return nil, err
	}
	if chatMax < chatMin {
		return nil, fmt.Errorf("CHAT_MAX_DELAY_MS (%s) は CHAT_MIN_DELAY_MS (%s) 以上にしてください", chatMax, chatMin)
	}
	ttlMinutes, err := intEnv("SESSION_TTL_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	if ttlMinutes <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_MINUTES は正の整数で指定してください")
	}

	return &Config{
		Port:           stringEnv("PORT", "8080"),
		GinMode:        stringEnv("GIN_MODE", "release"),
		AllowedOrigins: listEnv("ALLOWED_ORIGINS", []string{"*"}),
		PlanDelay:      planDelay,
		ChatMinDelay:   chatMin,
		ChatMaxDelay:   chatMax,
		SessionTTL:     time.Duration(ttlMinutes) * time.Minute,
	}, nil
}

// Addr はListen用のアドレス
func (c *Config) Addr() string {
	return ":" + c.Port
}

func stringEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s の値が不正です (%q): %w", key, raw, err)
	}
	return v, nil
}

func durationMillis(key string, defMillis int) (time.Duration, error) {
	ms, err := intEnv(key, defMillis)
	if err != nil {
		return 0, err
	}
	if ms < 0 {
		return 0, fmt.Errorf("%s は0以上で指定してください", key)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func listEnv(key string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return def
	}
	return items
}
