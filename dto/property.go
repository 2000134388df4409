package dto

// PropertyRequest is the full listing payload for create and replace.
type PropertyRequest struct {
	Title          string   `json:"title" binding:"required,notblank,max=200"`
	Description    string   `json:"description" binding:"max=5000"`
	City           string   `json:"city" binding:"required,notblank,max=120"`
	Price          int      `json:"price" binding:"required,min=1,max=1000000"`
	Rooms          int      `json:"rooms" binding:"min=0,max=100"`
	Bathrooms      int      `json:"bathrooms" binding:"min=0,max=100"`
	Area           int      `json:"area" binding:"min=0"`
	HasWifi        bool     `json:"hasWifi"`
	HasParking     bool     `json:"hasParking"`
	HasPool        bool     `json:"hasPool"`
	ExtraAmenities []string `json:"extraAmenities" binding:"omitempty,max=30,dive,notblank,max=60"`
	PhotoURLs      []string `json:"photoUrls" binding:"omitempty,max=20,dive,url"`
}

// PropertyFilter is the search criteria; a nil pointer or empty string means
// the criterion is not applied.
type PropertyFilter struct {
	City       string `form:"city" json:"city"`
	MinPrice   *int   `form:"minPrice" json:"minPrice" binding:"omitempty,min=0"`
	MaxPrice   *int   `form:"maxPrice" json:"maxPrice" binding:"omitempty,min=0"`
	MinRooms   *int   `form:"minRooms" json:"minRooms" binding:"omitempty,min=0"`
	MinArea    *int   `form:"minArea" json:"minArea" binding:"omitempty,min=0"`
	HasWifi    *bool  `form:"hasWifi" json:"hasWifi"`
	HasParking *bool  `form:"hasParking" json:"hasParking"`
	HasPool    *bool  `form:"hasPool" json:"hasPool"`
	Keyword    string `form:"keyword" json:"keyword"`
}

type PropertyQuery struct {
	PropertyFilter
	Page     int `form:"page" binding:"omitempty,min=1,max=1000000"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

type PhotoRequest struct {
	URL string `json:"url" binding:"required,url,max=1000"`
}

type QuoteQuery struct {
	CheckIn  string `form:"checkIn" binding:"required"`
	CheckOut string `form:"checkOut" binding:"required"`
}
