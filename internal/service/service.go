package service

import (
	"fmt"

	"github.com/checkplatform/checkdesk/internal/handlers/admins"
	"github.com/checkplatform/checkdesk/internal/handlers/auth"
	"github.com/checkplatform/checkdesk/internal/handlers/checks"
	"github.com/checkplatform/checkdesk/internal/handlers/comments"
	"github.com/checkplatform/checkdesk/internal/handlers/companies"
	"github.com/checkplatform/checkdesk/internal/handlers/sellers"
	"github.com/checkplatform/checkdesk/internal/handlers/users"

	pkgauth "github.com/checkplatform/checkdesk/pkg/auth"
	"github.com/checkplatform/checkdesk/pkg/clients"

	"github.com/checkplatform/checkdesk/internal/config"
	"github.com/checkplatform/checkdesk/internal/filestore"
	"github.com/checkplatform/checkdesk/internal/notify"
	"github.com/checkplatform/checkdesk/internal/pg"
	"github.com/checkplatform/checkdesk/internal/repo"
	adminservice "github.com/checkplatform/checkdesk/internal/service/adminservice"
	applicationservice "github.com/checkplatform/checkdesk/internal/service/applicationservice"
	authservice "github.com/checkplatform/checkdesk/internal/service/authservice"
	checkservice "github.com/checkplatform/checkdesk/internal/service/checkservice"
	commentservice "github.com/checkplatform/checkdesk/internal/service/commentservice"
	companyservice "github.com/checkplatform/checkdesk/internal/service/companyservice"
	sellerservice "github.com/checkplatform/checkdesk/internal/service/sellerservice"
	userservice "github.com/checkplatform/checkdesk/internal/service/userservice"
)

// Services wires the service layer for the handlers. ApplicationService stays
// concrete: the applications and companies handlers consume it through
// different interfaces.
type Services struct {
	AuthService        auth.Service
	ApplicationService *applicationservice.Service
	CheckService       checks.Service
	CompanyService     companies.Service
	SellerService      sellers.Service
	UserService        users.Service
	AdminService       admins.Service
	CommentService     comments.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) (*Services, error) {
	fileStore, err := filestore.New(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("can't init file store: %w", err)
	}

	hashService := &pkgauth.HashService{}
	jwtService := pkgauth.NewJWTService(cfg.ClientJWTSecret, cfg.AdminJWTSecret)
	notifier := notify.NewTelegramNotifier(clients.NewHTTPClient(), cfg.TelegramToken, cfg.TelegramChatID)

	applicationService := applicationservice.New(
		repo.ApplicationRepo,
		repo.CheckRepo,
		repo.CompanyRepo,
		repo.SellerRepo,
		repo.UserRepo,
		repo.CounterRepo,
		txManager,
		notifier,
	)
	checkService := checkservice.New(repo.CheckRepo, repo.ApplicationRepo, applicationService, repo.CounterRepo, txManager)
	companyService := companyservice.New(repo.CompanyRepo)
	sellerService := sellerservice.New(repo.SellerRepo)
	userService := userservice.New(repo.UserRepo, repo.CompanyRepo, repo.ApplicationRepo)
	adminService := adminservice.New(repo.AdminRepo, hashService)
	authService := authservice.New(repo.UserRepo, repo.AdminRepo, hashService, jwtService)
	commentService := commentservice.New(repo.CommentRepo, repo.ApplicationRepo, fileStore)

	return &Services{
		AuthService:        authService,
		ApplicationService: applicationService,
		CheckService:       checkService,
		CompanyService:     companyService,
		SellerService:      sellerService,
		UserService:        userService,
		AdminService:       adminService,
		CommentService:     commentService,
	}, nil
}
