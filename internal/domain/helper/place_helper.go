package helper

import (
	"Tourism-App/internal/domain/model"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// DistanceKm は2地点間の距離を計算する (km)
func DistanceKm(p1, p2 model.LatLng) float64 {
	return geo.Distance(p1.ToPoint(), p2.ToPoint()) / 1000
}

// RouteDistanceKm は指定順に巡った場合の合計距離を計算する (km, 小数点1桁)
func RouteDistanceKm(stops []model.LatLng) float64 {
	if len(stops) < 2 {
		return 0
	}
	line := make(orb.LineString, 0, len(stops))
	for _, s := range stops {
		line = append(line, s.ToPoint())
	}
	return RoundKm(geo.Length(line) / 1000)
}

// RoundKm は距離を小数点1桁に丸める
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

// TakeFirst はスライスの先頭n件をコピーして返す
func TakeFirst(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	if n < 0 {
		n = 0
	}
	result := make([]string, n)
	copy(result, items[:n])
	return result
}

// UniqueStrings は最初の出現順を保ったまま重複を除去する
func UniqueStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// PlacesWithinRadius は中心地点から半径内にある観光地を近い順に返す（中心の観光地自身は除外）
func PlacesWithinRadius(origin *model.PlaceDetail, places []*model.PlaceDetail, radiusKm float64) []model.NearbyPlace {
	center := origin.Location.ToPoint()
	bound := geo.NewBoundAroundPoint(center, radiusKm*1000)

	var nearby []model.NearbyPlace
	for _, p := range places {
		if p.ID == origin.ID || p.Location.IsZero() {
			continue
		}
		// 矩形で粗く絞り込んでから実距離で判定
		if !bound.Contains(p.Location.ToPoint()) {
			continue
		}
		d := DistanceKm(origin.Location, p.Location)
		if d > radiusKm {
			continue
		}
		nearby = append(nearby, model.NearbyPlace{ID: p.ID, Name: p.Name, DistanceKm: RoundKm(d)})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby
}
