package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize はローカル開発用の.envを読み込む。
// 本番ではプラットフォームが設定した環境変数をそのまま使う。
func Initialize(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Println("No .env file found; using environment variables")
		return
	}
	log.Println("Loaded .env file for local development")
}
