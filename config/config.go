package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB  *gorm.DB
	Log = zap.NewNop()

	// UploadDir is where submitted photos are written. The same directory is
	// served statically under /uploads/.
	UploadDir = "./uploads"

	// DemoPassword is the development login bypass. Set DEMO_PASSWORD="" to
	// disable it.
	DemoPassword = "demo"
)

func Connect() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	Log = NewLogger(os.Getenv("LOG_LEVEL"))

	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		UploadDir = dir
	}
	if pw, ok := os.LookupEnv("DEMO_PASSWORD"); ok {
		DemoPassword = pw
	}

	dsn := os.Getenv("DB_DSN")
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := Migrations(DB); err != nil {
		Log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seeding skips anything that already exists
	if err := SeedDemoData(DB); err != nil {
		Log.Warn("Seeding encountered issues", zap.Error(err))
	}
}

// NewLogger builds the process-wide zap logger. JSON to stdout so Docker and
// log collectors can capture it.
func NewLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	return logger.With(zap.String("service_name", "onsite-backend"))
}
