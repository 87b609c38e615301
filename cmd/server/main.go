package main

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"pitchbot/internal/config"
	"pitchbot/internal/crypto"
	"pitchbot/internal/email/noop"
	"pitchbot/internal/email/ses"
	"pitchbot/internal/handler"
	"pitchbot/internal/pipeline"
	"pitchbot/internal/port"
	"pitchbot/internal/rag"
	"pitchbot/internal/repository/memory"
	"pitchbot/internal/repository/postgres"
	"pitchbot/internal/resume"
	"pitchbot/internal/router"
	"pitchbot/internal/service"
	s3storage "pitchbot/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var db *sqlx.DB
	var vectors port.VectorStore
	var sessionStore port.SessionStore
	var chatbotRepo port.ChatbotRepository

	if cfg.Session.Store == "memory" {
		vectors = rag.NewMemoryVectorStore()
		sessionStore = pipeline.NewMemoryStore()
		chatbotRepo = memory.NewChatbotRepo()
	} else {
		db, err = postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		vectors = postgres.NewVectorRepo(db)
		sessionStore = postgres.NewSessionRepo(db)
		chatbotRepo = postgres.NewChatbotRepo(db)
	}

	// Resume parser (heuristic, LLM, or a chain of both)
	parser, err := resume.NewFromConfig(&cfg.Parser)
	if err != nil {
		return fmt.Errorf("failed to build resume parser: %w", err)
	}

	// Credential cipher
	cipherKey := cfg.Crypto.Key
	if cipherKey == "" {
		cipherKey, err = crypto.EphemeralKey()
		if err != nil {
			return fmt.Errorf("failed to generate cipher key: %w", err)
		}
		log.Printf("WARNING: crypto.key is not configured; using an ephemeral cipher key. Stored credentials will not survive a restart. Set PITCHBOT_CRYPTO_KEY for production.")
	}
	cipher, err := crypto.NewCipher(cipherKey)
	if err != nil {
		return fmt.Errorf("failed to initialize credential cipher: %w", err)
	}

	// Object storage for export artifacts
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Email
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender(cfg.Email.FrontendURL)
	}

	// RAG engine
	engine := rag.NewEngine(vectors, rag.NewMemoryBank(cfg.RAG.MemoryMessages), rag.Options{
		ChunkSize:    cfg.RAG.ChunkSize,
		ChunkOverlap: cfg.RAG.ChunkOverlap,
		TopK:         cfg.RAG.TopK,
	})

	// Services
	resumeSvc := service.NewResumeService(parser, cfg.Upload.MaxFileSizeMB)
	botSvc := service.NewBotService(engine, cfg.RAG)
	registrySvc := service.NewRegistryService(chatbotRepo, botSvc, cipher, emailSender)
	chatSvc := service.NewChatService(engine, registrySvc, cfg.RAG)
	sessionSvc := service.NewSessionService(sessionStore, botSvc, registrySvc)
	apiURL := "http://localhost" + cfg.Server.Port
	exportSvc := service.NewExportService(s3Client, registrySvc, cfg.S3, cfg.Email, apiURL)

	// Handlers
	resumeH := handler.NewResumeHandler(resumeSvc, sessionSvc)
	botH := handler.NewBotHandler(botSvc)
	chatH := handler.NewChatHandler(chatSvc)
	chatbotH := handler.NewChatbotHandler(registrySvc, exportSvc)
	cryptoH := handler.NewCryptoHandler(cipher)
	sessionH := handler.NewSessionHandler(sessionSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, resumeH, botH, chatH, chatbotH, cryptoH, sessionH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
