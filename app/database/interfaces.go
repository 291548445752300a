package database

type CategoryRepository interface {
	GetCategories() ([]Category, error)
	GetCategoryCount() (int, error)
}

type ProductRepository interface {
	GetProducts() ([]ProductRow, error)
	GetProductMeta(ids []int64) (map[int64]map[string]string, error)
	GetThumbnailURLs(ids []int64) (map[int64]string, error)
	GetProductCount() (int, error)
}

type FeedRepository interface {
	GetActiveFeed() (*FeedRecord, error)
	GetFeedByHash(hash string) (*FeedRecord, error)
	CreateFeed(domain, name, feedURL, phone, email, hash string) (int64, error)
	DeactivateAll() error
	GetFeedCount() (int, error)
}
