package database

type Database struct {
	projectRepo     *ProjectRepo
	categoryRepo    *CategoryRepo
	messageRepo     *MessageRepo
	reviewRepo      *ReviewRepo
	siteContentRepo *SiteContentRepo
	adminUserRepo   *AdminUserRepo
}

// New initializes a new Database struct with each repository sharing one
// document store
func New(store DocStore) Database {
	return Database{
		projectRepo:     NewProjectRepo(store),
		categoryRepo:    NewCategoryRepo(store),
		messageRepo:     NewMessageRepo(store),
		reviewRepo:      NewReviewRepo(store),
		siteContentRepo: NewSiteContentRepo(store),
		adminUserRepo:   NewAdminUserRepo(store),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}

func (d Database) ReviewRepo() *ReviewRepo {
	return d.reviewRepo
}

func (d Database) SiteContentRepo() *SiteContentRepo {
	return d.siteContentRepo
}

func (d Database) AdminUserRepo() *AdminUserRepo {
	return d.adminUserRepo
}
