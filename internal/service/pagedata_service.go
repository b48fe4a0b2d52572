package service

import (
	"context"
	"errors"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// PageDataService 为每个前台页面装配视图模型。
// 一个页面的全部读取并行发起，任一读取失败则整个装配失败，不返回部分结果。
// 未配置的单例区块视作缺失而非错误。
type PageDataService struct {
	db           *gorm.DB
	sections     *SectionService
	hero         *HeroService
	team         *TeamService
	testimonials *TestimonialService
	clients      *ClientService
	blog         *BlogService
	taxonomy     *TaxonomyService
	projects     *ProjectService
	projectCats  *ProjectCategoryService
	contacts     *ContactService
	settings     *SettingService
}

// NewPageDataService 构造 PageDataService。
func NewPageDataService(gdb *gorm.DB) *PageDataService {
	return &PageDataService{
		db:           gdb,
		sections:     NewSectionService(gdb),
		hero:         NewHeroService(gdb),
		team:         NewTeamService(gdb),
		testimonials: NewTestimonialService(gdb),
		clients:      NewClientService(gdb),
		blog:         NewBlogService(gdb),
		taxonomy:     NewTaxonomyService(gdb),
		projects:     NewProjectService(gdb),
		projectCats:  NewProjectCategoryService(gdb),
		contacts:     NewContactService(gdb),
		settings:     NewSettingService(gdb),
	}
}

// HomePageData 是首页的视图模型。
type HomePageData struct {
	Hero             *db.HeroSlider   `json:"hero"`
	Sections         []db.Section     `json:"sections"`
	FeaturedProjects []db.Project     `json:"featuredProjects"`
	Testimonials     []db.Testimonial `json:"testimonials"`
	Clients          []db.Client      `json:"clients"`
}

// AboutPageData 是关于页的视图模型。
type AboutPageData struct {
	About    *db.Section     `json:"about"`
	WhoWeAre *db.Section     `json:"whoWeAre"`
	TeamInfo *db.Section     `json:"teamInfo"`
	Team     []db.TeamMember `json:"team"`
}

// BlogPageData 是博客列表页的视图模型。
type BlogPageData struct {
	Posts      []db.BlogPost   `json:"posts"`
	Categories []CategoryUsage `json:"categories"`
	Tags       []db.BlogTag    `json:"tags"`
}

// PortfolioPageData 是作品集页的视图模型。
type PortfolioPageData struct {
	Projects   []db.Project         `json:"projects"`
	Categories []db.ProjectCategory `json:"categories"`
}

// ContactPageData 是联系页的视图模型。
type ContactPageData struct {
	Contact  *db.Section       `json:"contact"`
	Settings map[string]string `json:"settings"`
}

// DashboardData 是后台面板的统计汇总。
type DashboardData struct {
	Posts             int64 `json:"posts"`
	Projects          int64 `json:"projects"`
	TeamMembers       int64 `json:"teamMembers"`
	Testimonials      int64 `json:"testimonials"`
	Submissions       int64 `json:"submissions"`
	UnreadSubmissions int64 `json:"unreadSubmissions"`
}

// HomePage 并行装配首页数据。
func (s *PageDataService) HomePage(ctx context.Context) (*HomePageData, error) {
	data := &HomePageData{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		hero, err := s.hero.GetActive(db.HeroSliderKeyDefault)
		if err != nil {
			if errors.Is(err, ErrHeroNotFound) {
				return nil
			}
			return err
		}
		data.Hero = hero
		return nil
	})
	g.Go(func() error {
		sections, err := s.sections.ListActive(db.SectionKeyCreative, db.SectionKeyWhoWeAre)
		if err != nil {
			return err
		}
		data.Sections = sections
		return nil
	})
	g.Go(func() error {
		projects, err := s.projects.List(ProjectFilter{OnlyActive: true, OnlyFeatured: true})
		if err != nil {
			return err
		}
		data.FeaturedProjects = projects
		return nil
	})
	g.Go(func() error {
		testimonials, err := s.testimonials.List(true)
		if err != nil {
			return err
		}
		data.Testimonials = testimonials
		return nil
	})
	g.Go(func() error {
		clients, err := s.clients.List(true)
		if err != nil {
			return err
		}
		data.Clients = clients
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// AboutPage 并行装配关于页数据。
func (s *PageDataService) AboutPage(ctx context.Context) (*AboutPageData, error) {
	data := &AboutPageData{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		section, err := s.optionalSection(db.SectionKeyAbout)
		if err != nil {
			return err
		}
		data.About = section
		return nil
	})
	g.Go(func() error {
		section, err := s.optionalSection(db.SectionKeyWhoWeAre)
		if err != nil {
			return err
		}
		data.WhoWeAre = section
		return nil
	})
	g.Go(func() error {
		section, err := s.optionalSection(db.SectionKeyTeam)
		if err != nil {
			return err
		}
		data.TeamInfo = section
		return nil
	})
	g.Go(func() error {
		team, err := s.team.List(true)
		if err != nil {
			return err
		}
		data.Team = team
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// BlogPage 并行装配博客列表页数据。
func (s *PageDataService) BlogPage(ctx context.Context, categorySlug, tagSlug string) (*BlogPageData, error) {
	data := &BlogPageData{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts, err := s.blog.List(BlogPostFilter{
			PublishedOnly: true,
			CategorySlug:  categorySlug,
			TagSlug:       tagSlug,
		})
		if err != nil {
			return err
		}
		data.Posts = posts
		return nil
	})
	g.Go(func() error {
		categories, err := s.taxonomy.CategoryUsageCounts()
		if err != nil {
			return err
		}
		data.Categories = categories
		return nil
	})
	g.Go(func() error {
		tags, err := s.taxonomy.ListTags()
		if err != nil {
			return err
		}
		data.Tags = tags
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// PortfolioPage 并行装配作品集页数据。
func (s *PageDataService) PortfolioPage(ctx context.Context, category string) (*PortfolioPageData, error) {
	data := &PortfolioPageData{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		projects, err := s.projects.List(ProjectFilter{OnlyActive: true, Category: category})
		if err != nil {
			return err
		}
		data.Projects = projects
		return nil
	})
	g.Go(func() error {
		categories, err := s.projectCats.List()
		if err != nil {
			return err
		}
		data.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// ContactPage 并行装配联系页数据。
func (s *PageDataService) ContactPage(ctx context.Context) (*ContactPageData, error) {
	data := &ContactPageData{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		section, err := s.optionalSection(db.SectionKeyContact)
		if err != nil {
			return err
		}
		data.Contact = section
		return nil
	})
	g.Go(func() error {
		settings, err := s.settings.GetSettings()
		if err != nil {
			return err
		}
		data.Settings = settings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// Dashboard 并行统计后台面板所需的各项计数。
func (s *PageDataService) Dashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(s.countInto(&db.BlogPost{}, &data.Posts))
	g.Go(s.countInto(&db.Project{}, &data.Projects))
	g.Go(s.countInto(&db.TeamMember{}, &data.TeamMembers))
	g.Go(s.countInto(&db.Testimonial{}, &data.Testimonials))
	g.Go(s.countInto(&db.ContactSubmission{}, &data.Submissions))
	g.Go(func() error {
		count, err := s.contacts.UnreadCount()
		if err != nil {
			return err
		}
		data.UnreadSubmissions = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *PageDataService) countInto(model interface{}, dst *int64) func() error {
	return func() error {
		return s.db.Model(model).Count(dst).Error
	}
}

func (s *PageDataService) optionalSection(page string) (*db.Section, error) {
	section, err := s.sections.Get(page)
	if err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !section.IsActive {
		return nil, nil
	}
	return section, nil
}
