package categories

import "helpmynew-service/internal/app/models"

func names(es, en, fr, de, it, pt string) models.LocalizedText {
	return models.LocalizedText{"es": es, "en": en, "fr": fr, "de": de, "it": it, "pt": pt}
}

func descriptions(es, en string) models.LocalizedText {
	return models.LocalizedText{"es": es, "en": en}
}

// DefaultCategories is the catalog a fresh installation starts with.
var DefaultCategories = []models.Category{
	{
		CategoryID:  "cat_cooking",
		Name:        names("Cocina", "Cooking", "Cuisine", "Kochen", "Cucina", "Cozinha"),
		Icon:        "ChefHat",
		Description: descriptions("Ayuda en cocina y preparación de alimentos", "Kitchen help and food preparation"),
	},
	{
		CategoryID:  "cat_gardening",
		Name:        names("Jardinería", "Gardening", "Jardinage", "Gartenarbeit", "Giardinaggio", "Jardinagem"),
		Icon:        "Flower2",
		Description: descriptions("Cuidado de jardines y plantas", "Garden and plant care"),
	},
	{
		CategoryID:  "cat_hairdressing",
		Name:        names("Peluquería", "Hairdressing", "Coiffure", "Friseur", "Parrucchiere", "Cabeleireiro"),
		Icon:        "Scissors",
		Description: descriptions("Servicios de peluquería y estética", "Hair and beauty services"),
	},
	{
		CategoryID:  "cat_psychology",
		Name:        names("Psicología", "Psychology", "Psychologie", "Psychologie", "Psicologia", "Psicologia"),
		Icon:        "Brain",
		Description: descriptions("Apoyo psicológico y bienestar mental", "Psychological support and mental wellness"),
	},
	{
		CategoryID:  "cat_sewing",
		Name:        names("Costura", "Sewing", "Couture", "Nähen", "Cucito", "Costura"),
		Icon:        "Shirt",
		Description: descriptions("Arreglos y confección de ropa", "Clothing repairs and tailoring"),
	},
	{
		CategoryID:  "cat_painting",
		Name:        names("Pintura", "Painting", "Peinture", "Malerei", "Pittura", "Pintura"),
		Icon:        "Paintbrush",
		Description: descriptions("Pintura de interiores y exteriores", "Interior and exterior painting"),
	},
	{
		CategoryID:  "cat_cleaning",
		Name:        names("Limpieza", "Cleaning", "Nettoyage", "Reinigung", "Pulizia", "Limpeza"),
		Icon:        "Sparkles",
		Description: descriptions("Limpieza del hogar y oficinas", "Home and office cleaning"),
	},
	{
		CategoryID:  "cat_moving",
		Name:        names("Mudanzas", "Moving", "Déménagement", "Umzug", "Trasloco", "Mudança"),
		Icon:        "Truck",
		Description: descriptions("Ayuda con mudanzas y transporte", "Moving and transport assistance"),
	},
	{
		CategoryID:  "cat_childcare",
		Name:        names("Cuidado infantil", "Childcare", "Garde d'enfants", "Kinderbetreuung", "Cura dei bambini", "Cuidado infantil"),
		Icon:        "Baby",
		Description: descriptions("Cuidado de niños y actividades", "Child care and activities"),
	},
	{
		CategoryID:  "cat_eldercare",
		Name:        names("Cuidado de mayores", "Elder Care", "Soins aux personnes âgées", "Altenpflege", "Assistenza anziani", "Cuidado de idosos"),
		Icon:        "Heart",
		Description: descriptions("Asistencia y compañía para personas mayores", "Assistance and companionship for elderly"),
	},
	{
		CategoryID:  "cat_accessibility",
		Name:        names("Accesibilidad", "Accessibility", "Accessibilité", "Barrierefreiheit", "Accessibilità", "Acessibilidade"),
		Icon:        "Eye",
		Description: descriptions("Ayuda para personas con discapacidad visual u otras necesidades", "Help for people with visual or other disabilities"),
	},
	{
		CategoryID:  "cat_reading",
		Name:        names("Lectura y compañía", "Reading & Company", "Lecture et compagnie", "Lesen und Gesellschaft", "Lettura e compagnia", "Leitura e companhia"),
		Icon:        "BookOpen",
		Description: descriptions("Lectura de cuentos, acompañamiento y conversación", "Story reading, companionship and conversation"),
	},
	{
		CategoryID:  "cat_repairs",
		Name:        names("Reparaciones", "Repairs", "Réparations", "Reparaturen", "Riparazioni", "Reparos"),
		Icon:        "Wrench",
		Description: descriptions("Pequeñas reparaciones del hogar", "Small home repairs"),
	},
	{
		CategoryID:  "cat_technology",
		Name:        names("Tecnología", "Technology", "Technologie", "Technologie", "Tecnologia", "Tecnologia"),
		Icon:        "Laptop",
		Description: descriptions("Ayuda con dispositivos y tecnología", "Help with devices and technology"),
	},
	{
		CategoryID:  "cat_pets",
		Name:        names("Mascotas", "Pets", "Animaux", "Haustiere", "Animali", "Animais"),
		Icon:        "Cat",
		Description: descriptions("Cuidado y paseo de mascotas", "Pet care and walking"),
	},
}
