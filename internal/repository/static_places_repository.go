package repository

import (
	"context"
	"strings"

	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/domain/repository"
)

// DefaultPlaceID は未知のIDが指定された場合に返す観光地
const DefaultPlaceID = "netarhat"

// StaticPlacesRepository は起動時に定義した観光地カタログを返す読み取り専用リポジトリ
// 返す観光地はすべて複製で、カタログ本体は変更されない
type StaticPlacesRepository struct {
	places []*model.PlaceDetail
	byID   map[string]*model.PlaceDetail
}

func NewStaticPlacesRepository() repository.PlacesRepository {
	places := placeCatalog()
	byID := make(map[string]*model.PlaceDetail, len(places))
	for _, p := range places {
		byID[p.ID] = p
	}
	return &StaticPlacesRepository{
		places: places,
		byID:   byID,
	}
}

func (r *StaticPlacesRepository) GetByID(ctx context.Context, id string) (*model.PlaceDetail, bool) {
	p, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

func (r *StaticPlacesRepository) GetDefault(ctx context.Context) *model.PlaceDetail {
	return r.byID[DefaultPlaceID].Clone()
}

func (r *StaticPlacesRepository) GetAll(ctx context.Context) []*model.PlaceDetail {
	result := make([]*model.PlaceDetail, 0, len(r.places))
	for _, p := range r.places {
		result = append(result, p.Clone())
	}
	return result
}

func (r *StaticPlacesRepository) FindByKeyword(ctx context.Context, keyword string) (*model.PlaceDetail, bool) {
	for _, p := range r.places {
		for _, k := range p.Keywords {
			if strings.EqualFold(k, keyword) {
				return p.Clone(), true
			}
		}
	}
	return nil, false
}

func placeCatalog() []*model.PlaceDetail {
	return []*model.PlaceDetail{
		{
			ID:                "netarhat",
			Name:              "Netarhat",
			Description:       "Known as the 'Queen of Chotanagpur', Netarhat is a scenic hill station offering breathtaking sunrise and sunset views.",
			Highlights:        []string{"Sunrise Point", "Sunset Point", "Magnolia Point", "Koel View Point"},
			BestTime:          "October to March",
			HowToReach:        "45 km from Latehar, accessible by road",
			NearbyAttractions: []string{"Betla National Park", "Lower Ghaghri Falls", "Upper Ghaghri Falls"},
			Activities:        []string{"Photography", "Nature Walks", "Sunrise/Sunset Viewing", "Bird Watching"},
			Image:             "https://images.unsplash.com/photo-1506197603052-3cc9c3a201bd?ixlib=rb-4.0.3",
			Location:          model.LatLng{Lat: 23.4747, Lng: 84.2686},
			Keywords:          []string{"Netarhat"},
		},
		{
			ID:                "hundru",
			Name:              "Hundru Falls",
			Description:       "A magnificent 98-meter high waterfall formed by the Subarnarekha River, perfect for nature lovers and photographers.",
			Highlights:        []string{"98m High Waterfall", "Natural Pool", "Rock Formations", "Rainbow Views"},
			BestTime:          "July to November (monsoon and post-monsoon)",
			HowToReach:        "45 km from Ranchi via Purulia Road",
			NearbyAttractions: []string{"Jonha Falls", "Dassam Falls", "Panch Gagh Falls"},
			Activities:        []string{"Photography", "Picnicking", "Nature Study", "Rock Climbing"},
			Image:             "https://images.unsplash.com/photo-1439066615861-d1af74d74000?ixlib=rb-4.0.3",
			Location:          model.LatLng{Lat: 23.4507, Lng: 85.6660},
			Keywords:          []string{"Hundru Falls", "Hundru"},
		},
		{
			ID:                "betla",
			Name:              "Betla National Park",
			Description:       "One of India's earliest tiger reserves, home to diverse wildlife including tigers, elephants, and numerous bird species.",
			Highlights:        []string{"Tiger Reserve", "Ancient Fort Ruins", "Diverse Flora & Fauna", "Safari Experience"},
			BestTime:          "November to March",
			HowToReach:        "170 km from Ranchi, well connected by road",
			NearbyAttractions: []string{"Netarhat", "Palamau Fort", "Kechki"},
			Activities:        []string{"Jungle Safari", "Wildlife Photography", "Bird Watching", "Historical Exploration"},
			Image:             "https://images.unsplash.com/photo-1549366021-9f761d040a94?ixlib=rb-4.0.3",
			Location:          model.LatLng{Lat: 23.8867, Lng: 84.1910},
			Keywords:          []string{"Betla National Park", "Betla Safari", "Betla"},
		},
		{
			ID:                "patratu",
			Name:              "Patratu Valley",
			Description:       "A picturesque valley surrounded by lush green hills, offering adventure sports and scenic beauty.",
			Highlights:        []string{"Valley Views", "Adventure Sports", "Dam Site", "Boating"},
			BestTime:          "October to March",
			HowToReach:        "40 km from Ranchi via NH33",
			NearbyAttractions: []string{"Patratu Thermal Power Station", "Chandil Dam", "Dalma Wildlife Sanctuary"},
			Activities:        []string{"Paragliding", "Boating", "Nature Walks", "Photography"},
			Image:             "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3",
			Location:          model.LatLng{Lat: 23.6330, Lng: 85.2920},
			Keywords:          []string{"Patratu Valley", "Patratu"},
		},
		{
			ID:                "deoghar",
			Name:              "Deoghar",
			Description:       "A sacred pilgrimage site famous for the Baba Baidyanath Temple, one of the twelve Jyotirlingas of Lord Shiva.",
			Highlights:        []string{"Baidyanath Jyotirlinga", "Temple Complex", "Spiritual Atmosphere", "Cultural Heritage"},
			BestTime:          "October to March",
			HowToReach:        "250 km from Ranchi, connected by rail and road",
			NearbyAttractions: []string{"Trikuta Parvat", "Nandan Pahar", "Tapovan"},
			Activities:        []string{"Temple Visits", "Spiritual Walks", "Cultural Exploration", "Local Shopping"},
			Image:             "https://images.unsplash.com/photo-1590736969955-71cc94901144?ixlib=rb-4.0.3",
			Location:          model.LatLng{Lat: 24.4820, Lng: 86.6950},
			Keywords:          []string{"Deoghar"},
		},
		{
			ID:                "jagannath",
			Name:              "Jagannath Temple Ranchi",
			Description:       "A beautiful replica of the famous Puri Jagannath Temple, showcasing excellent architecture and spiritual significance.",
			Highlights:        []string{"Temple Architecture", "Spiritual Significance", "Cultural Programs", "City Location"},
			BestTime:          "Year round",
			HowToReach:        "Located in Ranchi city center",
			NearbyAttractions: []string{"Rock Garden", "Tagore Hill", "Ranchi Lake"},
			Activities:        []string{"Temple Visit", "Photography", "Cultural Programs", "City Exploration"},
			Image:             "https://images.unsplash.com/photo-1580500550469-a1ca85aeaff1?ixlib=rb-4.0.3",
			Location:          model.LatLng{Lat: 23.3170, Lng: 85.2810},
			Keywords:          []string{"Jagannath Temple Ranchi", "Jagannath Temple"},
		},
	}
}
