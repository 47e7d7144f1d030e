package repo

import (
	"github.com/checkplatform/checkdesk/internal/pg"
	adminrepo "github.com/checkplatform/checkdesk/internal/repo/admin-repo"
	applicationrepo "github.com/checkplatform/checkdesk/internal/repo/application-repo"
	checkrepo "github.com/checkplatform/checkdesk/internal/repo/check-repo"
	commentrepo "github.com/checkplatform/checkdesk/internal/repo/comment-repo"
	companyrepo "github.com/checkplatform/checkdesk/internal/repo/company-repo"
	counterrepo "github.com/checkplatform/checkdesk/internal/repo/counter-repo"
	sellerrepo "github.com/checkplatform/checkdesk/internal/repo/seller-repo"
	userrepo "github.com/checkplatform/checkdesk/internal/repo/user-repo"
)

// Repositories keeps the concrete repo set: most repos back several services
// through different consumer interfaces, so the fields stay concrete and each
// service narrows them on construction.
type Repositories struct {
	ApplicationRepo *applicationrepo.Repository
	CheckRepo       *checkrepo.Repository
	CompanyRepo     *companyrepo.Repository
	SellerRepo      *sellerrepo.Repository
	UserRepo        *userrepo.Repository
	AdminRepo       *adminrepo.Repository
	CommentRepo     *commentrepo.Repository
	CounterRepo     *counterrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		ApplicationRepo: applicationrepo.New(conn),
		CheckRepo:       checkrepo.New(conn),
		CompanyRepo:     companyrepo.New(conn),
		SellerRepo:      sellerrepo.New(conn),
		UserRepo:        userrepo.New(conn),
		AdminRepo:       adminrepo.New(conn),
		CommentRepo:     commentrepo.New(conn),
		CounterRepo:     counterrepo.New(conn),
	}
}
