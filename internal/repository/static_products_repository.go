package repository

import (
	"context"
	"fmt"

	"Tourism-App/internal/domain/model"
	"Tourism-App/internal/domain/repository"
)

// StaticProductsRepository はマーケットプレイスの商品カタログ
type StaticProductsRepository struct {
	products []model.Product
}

func NewStaticProductsRepository() repository.ProductsRepository {
	return &StaticProductsRepository{
		products: []model.Product{
			{ID: "dokra-horse", Name: "Dokra Horse Figurine", Category: "handicrafts", Artisan: "Khunti Dokra Collective", Description: "Lost-wax cast brass horse made by Malhar artisans.", PriceINR: 1800},
			{ID: "bamboo-basket", Name: "Bamboo Storage Basket", Category: "handicrafts", Artisan: "Dumka Bamboo Works", Description: "Hand-woven bamboo basket from the Santhal Parganas.", PriceINR: 650},
			{ID: "tussar-saree", Name: "Tussar Silk Saree", Category: "textiles", Artisan: "Bhagaiya Weavers", Description: "Handloom tussar silk with natural gold sheen.", PriceINR: 5200},
			{ID: "santhali-shawl", Name: "Santhali Handwoven Shawl", Category: "textiles", Artisan: "Pakur Women Weavers", Description: "Cotton shawl with traditional Santhali motifs.", PriceINR: 1200},
			{ID: "sohrai-painting", Name: "Sohrai Wall Painting", Category: "art", Artisan: "Hazaribagh Sohrai Artists", Description: "Mineral-pigment painting in the Sohrai harvest style.", PriceINR: 3500},
			{ID: "paitkar-scroll", Name: "Paitkar Scroll Painting", Category: "art", Artisan: "Amadubi Village", Description: "Narrative scroll painting from one of India's oldest folk traditions.", PriceINR: 2800},
			{ID: "tribal-necklace", Name: "Tribal Bead Necklace", Category: "jewelry", Artisan: "Oraon Craft Group", Description: "Glass and seed bead necklace worn during Karam festival.", PriceINR: 900},
		},
	}
}

func (r *StaticProductsRepository) GetAll(ctx context.Context) []model.Product {
	result := make([]model.Product, len(r.products))
	copy(result, r.products)
	return result
}

func (r *StaticProductsRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("商品ID %s: %w", id, model.ErrProductNotFound)
}
