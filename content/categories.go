package content

// PageCategory tags group content pages for navigation and listing
// views. They are display metadata, never identity.
const (
	CategoryKurumsal = "kurumsal"
	CategoryDusunce  = "dusunce"
	CategoryAkademi  = "akademi"
	CategoryYazilim  = "yazilim"
	CategoryKulupler = "kulupler"
	CategoryYayinlar = "yayinlar"
	CategoryYasal    = "yasal"
)

type CategoryLabel struct {
	Label       string
	Description string
}

var CategoryLabels = map[string]CategoryLabel{
	CategoryKurumsal: {
		Label:       "Kurumsal",
		Description: "Kim olduğumuzu, vizyonumuzu ve yönetişim yaklaşımımızı anlatan temel içerikler",
	},
	CategoryDusunce: {
		Label:       "Düşünce Enstitüsü",
		Description: "Araştırma, fikir geliştirme ve toplumsal dönüşüm projeleri",
	},
	CategoryAkademi: {
		Label:       "Akademi",
		Description: "Eğitim programlarımız, seminerler ve sertifika yolculukları",
	},
	CategoryYazilim: {
		Label:       "Yazılım Teknolojileri",
		Description: "Teknoloji üretimi, danışmanlık ve güvenlik çözümlerimiz",
	},
	CategoryKulupler: {
		Label:       "Kulüpler & Takımlar",
		Description: "Topluluklarımız, üretim takımları ve öğrenci kulüpleri",
	},
	CategoryYayinlar: {
		Label:       "Yayınlar",
		Description: "Dergiler, raporlar ve süreli yayınlarımız",
	},
	CategoryYasal: {
		Label:       "Yasal",
		Description: "Aydınlatma metinleri, gizlilik ve kullanım koşulları",
	},
}

func ValidCategory(c string) bool {
	_, ok := CategoryLabels[c]
	return ok
}

// CategoryValues returns the known tags in a stable order for form
// selects and validation rules.
func CategoryValues() []string {
	return []string{
		CategoryKurumsal, CategoryDusunce, CategoryAkademi,
		CategoryYazilim, CategoryKulupler, CategoryYayinlar, CategoryYasal,
	}
}
