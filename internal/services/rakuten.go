package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/borantia/backend/internal/config"
)

const (
	rakutenIchibaURL = "https://app.rakuten.co.jp/services/api/IchibaItem/Search/20220601"
	rakutenHotelURL  = "https://app.rakuten.co.jp/services/api/Travel/SimpleHotelSearch/20170426"

	// Tokyo Station in Rakuten's own datum, used when the caller supplies no
	// coordinates.
	defaultHotelLatitude  = "128440.51"
	defaultHotelLongitude = "503172.21"
)

// RakutenService proxies the Rakuten Web Service APIs used to enrich posting
// pages: Ichiba item search for required tools and SimpleHotelSearch for
// accommodation near the posting location.
type RakutenService struct {
	appID      string
	ichibaURL  string
	hotelURL   string
	httpClient *http.Client
}

func NewRakutenService(cfg *config.RakutenConfig) *RakutenService {
	return &RakutenService{
		appID:      cfg.AppID,
		ichibaURL:  rakutenIchibaURL,
		hotelURL:   rakutenHotelURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type Product struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url"`
	ShopName string `json:"shop_name"`
}

type ProductSearchResult struct {
	Keyword  string    `json:"keyword"`
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

type ichibaResponse struct {
	Count int `json:"count"`
	Items []struct {
		Item struct {
			ItemName        string `json:"itemName"`
			ItemPrice       int    `json:"itemPrice"`
			ItemURL         string `json:"itemUrl"`
			ShopName        string `json:"shopName"`
			MediumImageURLs []struct {
				ImageURL string `json:"imageUrl"`
			} `json:"mediumImageUrls"`
		} `json:"Item"`
	} `json:"Items"`
}

// SearchProducts returns up to five Ichiba items for the keyword.
func (s *RakutenService) SearchProducts(ctx context.Context, keyword string) (*ProductSearchResult, error) {
	if s.appID == "" {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("keyword", keyword)
	params.Set("applicationId", s.appID)
	params.Set("hits", "5")
	params.Set("sort", "standard")

	var data ichibaResponse
	if err := s.getJSON(ctx, s.ichibaURL+"?"+params.Encode(), &data); err != nil {
		return nil, err
	}

	result := ProductSearchResult{
		Keyword:  keyword,
		Products: make([]Product, 0, len(data.Items)),
		Total:    data.Count,
	}
	for _, wrapper := range data.Items {
		product := Product{
			Name:     wrapper.Item.ItemName,
			Price:    wrapper.Item.ItemPrice,
			URL:      wrapper.Item.ItemURL,
			ShopName: wrapper.Item.ShopName,
		}
		if len(wrapper.Item.MediumImageURLs) > 0 {
			product.ImageURL = wrapper.Item.MediumImageURLs[0].ImageURL
		}
		result.Products = append(result.Products, product)
	}

	return &result, nil
}

type Hotel struct {
	Name          string  `json:"name"`
	URL           string  `json:"url"`
	ImageURL      string  `json:"image_url"`
	Address       string  `json:"address"`
	TelephoneNo   string  `json:"telephone_no"`
	MinCharge     int     `json:"hotel_min_charge"`
	ReviewAverage float64 `json:"review_average"`
	ReviewCount   int     `json:"review_count"`
}

type HotelSearchResult struct {
	Hotels    []Hotel `json:"hotels"`
	Total     int     `json:"total"`
	Latitude  string  `json:"latitude"`
	Longitude string  `json:"longitude"`
	// DatumType is 1 when the caller supplied world-geodetic coordinates and
	// 0 when the Rakuten-datum Tokyo Station fallback was used.
	DatumType int `json:"datum_type"`
}

type hotelResponse struct {
	PagingInfo struct {
		RecordCount int `json:"recordCount"`
	} `json:"pagingInfo"`
	Hotels []struct {
		Hotel []struct {
			HotelBasicInfo struct {
				HotelName           string  `json:"hotelName"`
				HotelInformationURL string  `json:"hotelInformationUrl"`
				HotelImageURL       string  `json:"hotelImageUrl"`
				Address1            string  `json:"address1"`
				TelephoneNo         string  `json:"telephoneNo"`
				HotelMinCharge      int     `json:"hotelMinCharge"`
				ReviewAverage       float64 `json:"reviewAverage"`
				ReviewCount         int     `json:"reviewCount"`
			} `json:"hotelBasicInfo"`
		} `json:"hotel"`
	} `json:"hotels"`
}

// SearchHotels returns up to five hotels within 3km of the coordinates.
// With no coordinates it falls back to Tokyo Station in Rakuten's datum;
// caller coordinates are treated as world-geodetic (datumType=1).
func (s *RakutenService) SearchHotels(ctx context.Context, latitude, longitude string) (*HotelSearchResult, error) {
	if s.appID == "" {
		return nil, ErrNotConfigured
	}

	searchLatitude := defaultHotelLatitude
	searchLongitude := defaultHotelLongitude
	worldGeodetic := false
	if latitude != "" && longitude != "" {
		searchLatitude = latitude
		searchLongitude = longitude
		worldGeodetic = true
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("applicationId", s.appID)
	params.Set("latitude", searchLatitude)
	params.Set("longitude", searchLongitude)
	params.Set("searchRadius", "3")
	params.Set("hits", "5")
	params.Set("sort", "standard")
	if worldGeodetic {
		params.Set("datumType", "1")
	}

	var data hotelResponse
	if err := s.getJSON(ctx, s.hotelURL+"?"+params.Encode(), &data); err != nil {
		return nil, err
	}

	result := HotelSearchResult{
		Hotels:    make([]Hotel, 0, len(data.Hotels)),
		Total:     data.PagingInfo.RecordCount,
		Latitude:  searchLatitude,
		Longitude: searchLongitude,
	}
	if worldGeodetic {
		result.DatumType = 1
	}

	for _, wrapper := range data.Hotels {
		if len(wrapper.Hotel) == 0 {
			continue
		}
		info := wrapper.Hotel[0].HotelBasicInfo
		result.Hotels = append(result.Hotels, Hotel{
			Name:          info.HotelName,
			URL:           info.HotelInformationURL,
			ImageURL:      info.HotelImageURL,
			Address:       info.Address1,
			TelephoneNo:   info.TelephoneNo,
			MinCharge:     info.HotelMinCharge,
			ReviewAverage: info.ReviewAverage,
			ReviewCount:   info.ReviewCount,
		})
	}

	return &result, nil
}

func (s *RakutenService) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rakuten API returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
