package catalog

import (
	"context"
	"encoding/json"
	"fmt"
)

// StaticService serves a deterministic seeded inventory for local development
// and tests, with no CMS required.
type StaticService struct {
	listings []Listing
}

// StaticBaseURL is the origin seeded image URLs resolve against.
const StaticBaseURL = "https://cms.kurumaya.example"

// NewStaticService builds the seeded catalog. Seeds run through the same
// mapper as CMS records so the static path exercises the real pipeline.
func NewStaticService() *StaticService {
	raws := []RawListing{
		{
			ID:        1,
			TitleEN:   "Toyota Corolla Axio",
			TitleJA:   "トヨタ カローラ アクシオ",
			Price:     "1850000",
			Year:      2020,
			MileageEN: 32000,
			MileageJA: 32000,
			Image:     []RawImage{{URL: "/uploads/corolla-axio.jpg"}},
			DescriptionEN: "One-owner sedan with a full dealer service history. " +
				"Non-smoking interior, fresh inspection until 2027.",
			DescriptionJA: "ワンオーナーのセダン。ディーラー整備記録簿あり、禁煙車、車検2027年まで。",
			Specifications: json.RawMessage(`{
				"engine": {"en": "1.5L petrol", "ja": "1.5L ガソリン"},
				"transmission": {"en": "CVT", "ja": "CVT"},
				"fuel": {"en": "Petrol", "ja": "ガソリン"},
				"color": {"en": "Pearl White", "ja": "パールホワイト"}
			}`),
		},
		{
			ID:        2,
			TitleEN:   "Honda Fit Hybrid",
			TitleJA:   "ホンダ フィット ハイブリッド",
			Price:     1280000,
			Year:      2018,
			MileageEN: "54000",
			MileageJA: "54000",
			Image:     []RawImage{{URL: "/uploads/fit-hybrid.jpg"}},
			DescriptionEN: "Economical hybrid hatchback, ideal first car. " +
				"New tyres fitted this spring.",
			DescriptionJA: "燃費の良いハイブリッドハッチバック。今春タイヤ新品交換済み。",
			// Serialized-text form of the specifications object, as some CMS
			// records are stored.
			Specifications: json.RawMessage(`"{\"engine\": {\"en\": \"1.5L hybrid\", \"ja\": \"1.5L ハイブリッド\"}, \"transmission\": {\"en\": \"CVT\", \"ja\": \"CVT\"}, \"fuel\": {\"en\": \"Hybrid\", \"ja\": \"ハイブリッド\"}, \"color\": {\"en\": \"Midnight Blue\", \"ja\": \"ミッドナイトブルー\"}}"`),
		},
		{
			ID:        3,
			TitleEN:   "Honda Civic",
			TitleJA:   "ホンダ シビック",
			Price:     "4200000",
			Year:      2019,
			MileageEN: "45000",
			MileageJA: "45000",
			Image:     []RawImage{{URL: "/uploads/civic.jpg"}},
			DescriptionEN: "Sporty hatchback in excellent condition. " +
				"Aftermarket exhaust, original parts included.",
			DescriptionJA: "スポーティなハッチバック、程度良好。社外マフラー装着、純正部品付属。",
		},
		{
			ID:            4,
			TitleEN:       "Nissan Note e-POWER",
			TitleJA:       "日産 ノート e-POWER",
			Price:         1450000,
			Year:          2021,
			MileageEN:     21000,
			MileageJA:     21000,
			DescriptionJA: "自動ブレーキ、プロパイロット搭載。",
			Specifications: json.RawMessage(`{
				"engine": {"en": "1.2L series hybrid", "ja": "1.2L シリーズハイブリッド"},
				"transmission": {"en": "Single-speed", "ja": "1速固定"},
				"fuel": {"en": "Hybrid", "ja": "ハイブリッド"},
				"color": {"en": "Brilliant Silver", "ja": "ブリリアントシルバー"}
			}`),
		},
		{
			ID:        5,
			TitleEN:   "Mazda CX-5 XD",
			TitleJA:   "マツダ CX-5 XD",
			Price:     2680000,
			Year:      2020,
			MileageEN: 38000,
			MileageJA: 38000,
			Image:     []RawImage{{URL: "/uploads/cx5-xd.jpg"}},
			DescriptionEN: "Diesel SUV with AWD and BOSE audio. " +
				"Highway-driven, meticulously maintained.",
			DescriptionJA: "AWD・BOSEサウンド付きディーゼルSUV。高速走行中心、整備万全。",
			Specifications: json.RawMessage(`{
				"engine": {"en": "2.2L diesel turbo", "ja": "2.2L ディーゼルターボ"},
				"transmission": {"en": "6AT", "ja": "6AT"},
				"fuel": {"en": "Diesel", "ja": "軽油"},
				"color": {"en": "Soul Red", "ja": "ソウルレッド"}
			}`),
		},
		{
			ID:        6,
			TitleEN:   "Suzuki Jimny Sierra",
			TitleJA:   "スズキ ジムニーシエラ",
			Price:     2150000,
			Year:      2022,
			MileageEN: 9000,
			MileageJA: 9000,
			Image:     []RawImage{{URL: "/uploads/jimny-sierra.jpg"}},
			DescriptionEN: "Lightly used off-roader, still under factory warranty.",
			DescriptionJA: "メーカー保証継続中の軽走行オフローダー。",
			Specifications: json.RawMessage(`{
				"engine": {"en": "1.5L petrol", "ja": "1.5L ガソリン"},
				"transmission": {"en": "4AT", "ja": "4AT"},
				"fuel": {"en": "Petrol", "ja": "ガソリン"},
				"color": {"en": "Jungle Green", "ja": "ジャングルグリーン"}
			}`),
		},
	}

	listings := make([]Listing, 0, len(raws))
	for _, raw := range raws {
		listing, err := MapListing(raw, StaticBaseURL)
		if err != nil {
			// Seeds are fixed at compile time; a mapping error is a bug.
			panic(fmt.Sprintf("catalog: static seed %d: %v", raw.ID, err))
		}
		listings = append(listings, listing)
	}
	return &StaticService{listings: listings}
}

// List returns the seeded inventory in seed order.
func (s *StaticService) List(_ context.Context) ([]Listing, error) {
	result := make([]Listing, len(s.listings))
	copy(result, s.listings)
	return result, nil
}

// Get returns the seeded listing with the given identifier.
func (s *StaticService) Get(_ context.Context, id int) (Listing, error) {
	for _, l := range s.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return Listing{}, fmt.Errorf("%w: id %d", ErrListingNotFound, id)
}
