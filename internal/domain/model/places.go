package model

import "github.com/paulmach/orb"

// LatLng 緯度経度を表す基本的な型
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToPoint LatLngをorb.Pointに変換（orbは [longitude, latitude] の順）
func (l LatLng) ToPoint() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// IsZero 座標が未設定かどうか
func (l LatLng) IsZero() bool {
	return l.Lat == 0 && l.Lng == 0
}

// PlaceDetail 観光地の詳細情報（静的カタログ）
type PlaceDetail struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Highlights        []string `json:"highlights"`
	BestTime          string   `json:"best_time"`
	HowToReach        string   `json:"how_to_reach"`
	NearbyAttractions []string `json:"nearby_attractions"`
	Activities        []string `json:"activities"`
	Image             string   `json:"image"`
	Location          LatLng   `json:"location"`
	Keywords          []string `json:"-"` // チャット応答内でリンク化する表記
}

// Clone スライスも含めて複製する
func (p *PlaceDetail) Clone() *PlaceDetail {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Highlights = append([]string(nil), p.Highlights...)
	clone.NearbyAttractions = append([]string(nil), p.NearbyAttractions...)
	clone.Activities = append([]string(nil), p.Activities...)
	clone.Keywords = append([]string(nil), p.Keywords...)
	return &clone
}

// PlaceDetailResponse は観光地詳細APIのレスポンス
type PlaceDetailResponse struct {
	*PlaceDetail
	MapURL string `json:"map_url"`
}

// NearbyPlace 近隣の観光地（距離付き）
type NearbyPlace struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance_km"`
}

// NearbyPlacesResponse は近隣観光地APIのレスポンス
type NearbyPlacesResponse struct {
	Origin   string        `json:"origin"`
	RadiusKm float64       `json:"radius_km"`
	Places   []NearbyPlace `json:"places"`
}
