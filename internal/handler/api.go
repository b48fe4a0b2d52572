package handler

import (
	"github.com/HanyRabah/redzone-sub002/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	sections     *service.SectionService
	hero         *service.HeroService
	team         *service.TeamService
	testimonials *service.TestimonialService
	clients      *service.ClientService
	blog         *service.BlogService
	taxonomy     *service.TaxonomyService
	projects     *service.ProjectService
	projectCats  *service.ProjectCategoryService
	contacts     *service.ContactService
	settings     *service.SettingService
	users        *service.UserService
	pages        *service.PageService
	pageData     *service.PageDataService
	uploadDir    string
	uploadURL    string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:           db,
		sections:     service.NewSectionService(db),
		hero:         service.NewHeroService(db),
		team:         service.NewTeamService(db),
		testimonials: service.NewTestimonialService(db),
		clients:      service.NewClientService(db),
		blog:         service.NewBlogService(db),
		taxonomy:     service.NewTaxonomyService(db),
		projects:     service.NewProjectService(db),
		projectCats:  service.NewProjectCategoryService(db),
		contacts:     service.NewContactService(db),
		settings:     service.NewSettingService(db),
		users:        service.NewUserService(db),
		pages:        service.NewPageService(db),
		pageData:     service.NewPageDataService(db),
		uploadDir:    uploadDir,
		uploadURL:    uploadURL,
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}
