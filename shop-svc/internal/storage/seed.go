package storage

import "warung-qris/shop-svc/internal/domain"

// DefaultMenu is written to an empty store on first start.
func DefaultMenu() domain.Menu {
	return domain.Menu{
		"makanan": {
			{ID: 1, Name: "Nasi Goreng Spesial", Price: 25000, Image: "nasi_goreng.jpg", Description: "Nasi goreng dengan telur, ayam suwir dan kerupuk"},
			{ID: 2, Name: "Mie Ayam Bakso", Price: 20000, Image: "mie_ayam.jpg", Description: "Mie ayam kecap dengan bakso sapi"},
			{ID: 3, Name: "Gado-gado", Price: 18000, Image: "gado_gado.jpg", Description: "Sayuran rebus dengan saus kacang"},
			{ID: 4, Name: "Sate Ayam", Price: 30000, Image: "sate_ayam.jpg", Description: "Sepuluh tusuk sate ayam bumbu kacang"},
		},
		"minuman": {
			{ID: 5, Name: "Es Teh Manis", Price: 5000, Image: "es_teh.jpg", Description: "Teh melati dingin"},
			{ID: 6, Name: "Jus Jeruk", Price: 12000, Image: "jus_jeruk.jpg", Description: "Jeruk peras segar"},
			{ID: 7, Name: "Kopi Hitam", Price: 8000, Image: "kopi_hitam.jpg", Description: "Kopi tubruk robusta"},
		},
		"snack": {
			{ID: 8, Name: "Pisang Goreng", Price: 10000, Image: "pisang_goreng.jpg", Description: "Pisang kepok goreng tepung"},
			{ID: 9, Name: "Tahu Isi", Price: 8000, Image: "tahu_isi.jpg", Description: "Tahu goreng isi sayuran"},
		},
	}
}

func copyMenu(menu domain.Menu) domain.Menu {
	out := make(domain.Menu, len(menu))
	for category, items := range menu {
		out[category] = append([]domain.MenuItem(nil), items...)
	}
	return out
}
