package catalog

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
)

// Product is a catalog entry. Prices are IDR per kilogram and quantities
// are sold by the kilogram.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	PricePerKg  decimal.Decimal `json:"price_per_kg"`
	Description string          `json:"description"`
	SourceURL   string          `json:"source_url,omitempty"`
	ImagePath   string          `json:"image_path"`
}

// UnitWeightGrams is the shipping weight of one catalog unit (1 kg).
const UnitWeightGrams = 1000

var products = []Product{
	{
		ID:          "1",
		Name:        "Bayam Hijau",
		PricePerKg:  decimal.NewFromInt(20000),
		Description: "Bayam mengandung antioksidan, seperti vitamin C dan Vitamin E yang membantu melawan radikal bebas dalam tubuh dan dapat melindungi sel-sel dari kerusakan. Kandungan folat dalam bayam penting untuk kesehatan otak dan dapat membantu meningkatkan kognisi sehingga menjadikannya pilihan yang sangat baik untuk mendukung kesehatan mental dan fisik.",
		SourceURL:   "https://telemed.ihc.id/artikel-detail-1081-Manfaat-Sayur-Bayam-Untuk-Kesehatan.html",
		ImagePath:   "/bayam_hijau.jpg",
	},
	{
		ID:          "2",
		Name:        "Kangkung",
		PricePerKg:  decimal.NewFromInt(20000),
		Description: "Kangkung memiliki ragam senyawa tanaman dengan aktivitas antioksidan, seperti flavonoid, asam palmitate dan phytol. Antioksidan tersebut guna melawan radikal bebas yang kerap menyebabkan kerusakan DNA, sel jaringan hingga organ tubuh.",
		SourceURL:   "https://telemed.ihc.id/artikel-detail-609-Manfaat-Kangkung-Untuk-Kesehatan.html",
		ImagePath:   "/kangkung.jpg",
	},
	{
		ID:          "3",
		Name:        "Caisim",
		PricePerKg:  decimal.NewFromInt(22000),
		Description: "Caisim adalah sayuran yang kaya vitamin juga mineral, yang dibutuhkan tubuh. Caisim mengandung vitamin K dan C yang berkontribusi secara baik untuk menjaga sistem pertahanan kekebalan tubuh.",
		SourceURL:   "https://www.liputan6.com/hot/read/5126130/14-manfaat-sawi-hijau-untuk-kesehatan-kaya-antioksidan-dan-sumber-vitamin?page=4",
		ImagePath:   "/caisim.jpg",
	},
	{
		ID:          "4",
		Name:        "Pakcoy",
		PricePerKg:  decimal.NewFromInt(22000),
		Description: "Sayuran ini penuh dengan senyawa untuk melawan kanker seperti vitamin C, vitamin E, beta-karoten, folat, dan selenium. Vitamin C, vitamin E, dan beta-karoten adalah antioksidan kuat yang dapat membantu mencegah kerusakan sel akibat radikal bebas.",
		SourceURL:   "https://www.kompas.com/sains/read/2023/08/02/203000823/6-manfaat-pakcoy-untuk-kesehatan",
		ImagePath:   "/pakcoy.jpg",
	},
	{
		ID:          "5",
		Name:        "Kale",
		PricePerKg:  decimal.NewFromInt(35000),
		Description: "Kale adalah sayuran hijau bergizi tinggi yang sering disebut \"superfood\" karena kandungan nutrisi yang melimpah dan manfaatnya bagi kesehatan. Kale dikenal baik untuk kesehatan jantung, mata, tulang, sistem pencernaan, serta memiliki efek anti-penuaan dan detoksifikasi kulit.",
		SourceURL:   "https://www.halodoc.com/artikel/mengenal-sayur-kale-dan-manfaatnya-untuk-kesehatan",
		ImagePath:   "/kale.jpg",
	},
	{
		ID:          "6",
		Name:        "Selada Keriting",
		PricePerKg:  decimal.NewFromInt(25000),
		Description: "Selada keriting adalah salah satu sayuran daun yang rendah kalori dan banyak mengandung serat. Kombinasi rendah kalori dan tinggi serat membuat selada cocok dikonsumsi sebagai makanan penurun berat badan.",
		SourceURL:   "https://www.kompas.com/tren/read/2023/11/22/063000665/jadi-lalapan-penurun-berat-badan-ini-4-efek-samping-daun-selada?page=all",
		ImagePath:   "/selada_keriting.jpg",
	},
	{
		ID:          "7",
		Name:        "Selada Romaine",
		PricePerKg:  decimal.NewFromInt(25000),
		Description: "Selada romaine adalah salah satu jenis sayuran hijau yang sering digunakan dalam salad dan hidangan sehat lainnya. Selada romaine juga kaya akan nutrisi penting seperti serat, vitamin A, vitamin K, folat, dan mineral seperti kalium.",
		SourceURL:   "https://www.halodoc.com/artikel/selada-romaine-ini-kandungan-nutrisi-dan-manfaatnya-untuk-kesehatan",
		ImagePath:   "/selada_romaine.jpg",
	},
	{
		ID:          "8",
		Name:        "Melon Fujisawa",
		PricePerKg:  decimal.NewFromInt(33000),
		Description: "Melon Fujisawa merupakan jenis melon varietas Jepang yang memiliki tekstur daging empuk, renyah, dan manis, dengan warna orange, sedangkan kulitnya tebal dan berjaring rapat berwarna hijau.",
		SourceURL:   "https://surabaya.tribunnews.com/2022/09/14/sukses-budidaya-melon-sehat-dari-jepang-desa-di-lamongan-raup-pendapatan-besar-tanpa-pupuk-kimia",
		ImagePath:   "/melon_fujisawa.jpg",
	},
	{
		ID:          "9",
		Name:        "Bayam Merah",
		PricePerKg:  decimal.NewFromInt(20000),
		Description: "Bayam mengandung antioksidan, seperti vitamin C dan Vitamin E yang membantu melawan radikal bebas dalam tubuh dan dapat melindungi sel-sel dari kerusakan. Kandungan folat dalam bayam penting untuk kesehatan otak dan dapat membantu meningkatkan kognisi sehingga menjadikannya pilihan yang sangat baik untuk mendukung kesehatan mental dan fisik.",
		SourceURL:   "https://telemed.ihc.id/artikel-detail-1081-Manfaat-Sayur-Bayam-Untuk-Kesehatan.html",
		ImagePath:   "/bayam_merah.jpg",
	},
	{
		ID:          "10",
		Name:        "Melon Sweetnet",
		PricePerKg:  decimal.NewFromInt(33000),
		Description: "Melon Sweetnet merupakan jenis melon varietas Jepang yang memiliki tekstur daging empuk, renyah, dan manis, dengan warna orange, sedangkan kulitnya tebal dan berjaring rapat berwarna hijau.",
		SourceURL:   "https://surabaya.tribunnews.com/2022/09/14/sukses-budidaya-melon-sehat-dari-jepang-desa-di-lamongan-raup-pendapatan-besar-tanpa-pupuk-kimia",
		ImagePath:   "/melon_sweetnet.jpg",
	},
}

// List returns the full catalog in display order.
func List() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// FindByID returns the catalog entry for the given product ID.
func FindByID(id string) (Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}
