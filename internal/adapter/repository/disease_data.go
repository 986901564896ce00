package repository

import "github.com/plastinin/leafguard/internal/domain"

// Справочник, который отдавал сайт: десять состояний листа томата
var defaultDiseases = []domain.Disease{
	{
		Key:         "bacterial spot",
		Name:        "Bacterial Spot",
		Description: "Bacterial spot is a common disease that affects tomato plants, causing dark, water-soaked spots on leaves.",
		Symptoms: []string{
			"Dark brown or black spots on leaves",
			"Spots are usually surrounded by a yellow halo",
			"Spots may coalesce and cause yellowing of entire leaves",
			"Affected leaves eventually drop from the plant",
		},
		Causes: "Caused by various species of Xanthomonas bacteria",
		Prevention: []string{
			"Use disease-resistant varieties",
			"Remove infected plant parts immediately",
			"Avoid overhead watering",
			"Apply copper fungicides as preventative measure",
		},
		Treatment: []string{
			"Remove affected leaves and destroy them",
			"Apply copper or antibiotic sprays",
			"Improve air circulation around plants",
			"Do not work with wet plants",
		},
	},
	{
		Key:         "early blight",
		Name:        "Early Blight",
		Description: "Early blight is a fungal disease that primarily affects lower leaves and causes target-like spots.",
		Symptoms: []string{
			"Circular lesions with concentric rings (target-like appearance)",
			"Spots appear on lower leaves first",
			"Brown color with yellow halo around lesions",
			"Infected leaves eventually yellow and drop",
		},
		Causes: "Caused by the fungus Alternaria solani",
		Prevention: []string{
			"Space plants properly for good air circulation",
			"Mulch around plants to prevent soil splash",
			"Remove lower leaves as plant grows",
			"Use resistant varieties when available",
		},
		Treatment: []string{
			"Prune lower branches regularly",
			"Apply fungicides like mancozeb or chlorothalonil",
			"Remove and destroy infected leaves",
			"Maintain dry foliage by watering at soil level",
		},
	},
	{
		Key:         domain.HealthyKey,
		Name:        "Healthy",
		Description: "Healthy leaves show no signs of disease or pest damage.",
		Symptoms: []string{
			"Green coloration",
			"No spots or discoloration",
			"No visible damage or yellowing",
			"Normal growth and appearance",
		},
		Causes: "N/A - This is a healthy plant",
		Prevention: []string{
			"Maintain proper watering schedule",
			"Provide adequate nutrients",
			"Ensure proper sunlight exposure",
			"Monitor regularly for early signs of disease",
		},
		Treatment: []string{
			"No treatment needed - continue regular maintenance",
		},
	},
	{
		Key:         "late blight",
		Name:        "Late Blight",
		Description: "Late blight is a serious fungal disease caused by Phytophthora infestans that can rapidly destroy tomato plants.",
		Symptoms: []string{
			"Water-soaked lesions on leaves and stems",
			"Lesions turn brown and may have a white moldy appearance on the underside",
			"Rapid spread during wet, cool weather",
			"Can affect the entire plant within days",
		},
		Causes: "Caused by the oomycete pathogen Phytophthora infestans",
		Prevention: []string{
			"Plant resistant varieties",
			"Ensure good air circulation",
			"Avoid overhead watering",
			"Remove infected plant material promptly",
		},
		Treatment: []string{
			"Apply fungicides containing chlorothalonil or mancozeb",
			"Remove and destroy infected plants",
			"Apply preventive fungicides during wet periods",
			"Space plants wider for better air circulation",
		},
	},
	{
		Key:         "leaf mold",
		Name:        "Leaf Mold",
		Description: "Leaf mold is a fungal disease that thrives in humid conditions and affects the underside of leaves.",
		Symptoms: []string{
			"Yellow spots on upper leaf surface",
			"Gray or olive-colored mold on undersides of leaves",
			"Mold appears as a fine, powdery coating",
			"Affected leaves may drop prematurely",
		},
		Causes: "Caused by the fungus Passalora fulva (formerly Cladosporium fulvum)",
		Prevention: []string{
			"Maintain low humidity levels",
			"Improve air circulation with fans or spacing",
			"Avoid overhead watering",
			"Remove lower leaves as plants grow",
		},
		Treatment: []string{
			"Prune infected leaves and remove them from area",
			"Apply sulfur or copper fungicides",
			"Increase ventilation and reduce humidity",
			"Apply fungicides weekly during humid periods",
		},
	},
	{
		Key:         "septoria leaf spot",
		Name:        "Septoria Leaf Spot",
		Description: "Septoria leaf spot is a fungal disease that causes circular spots with dark borders and gray centers.",
		Symptoms: []string{
			"Circular spots with dark brown borders",
			"Gray or tan center with dark ring",
			"Tiny dark bodies (pycnidia) visible in center",
			"Often starts on lower leaves and moves upward",
		},
		Causes: "Caused by the fungus Septoria lycopersici",
		Prevention: []string{
			"Use disease-free seeds and transplants",
			"Space plants for good air circulation",
			"Remove lower leaves from plants",
			"Avoid working with plants when leaves are wet",
		},
		Treatment: []string{
			"Remove infected leaves immediately",
			"Apply fungicides like copper or chlorothalonil",
			"Keep foliage dry by watering at base",
			"Apply preventive sprays during wet weather",
		},
	},
	{
		Key:         "spider mites two-spotted spider mite",
		Name:        "Spider Mites Two-Spotted Spider Mite",
		Description: "Spider mites are tiny pests that cause stippling and yellowing of leaves.",
		Symptoms: []string{
			"Tiny light spots on leaves (stippling)",
			"Leaves turn yellow and become papery",
			"Fine webbing may be visible on undersides",
			"Leaves may drop if infestation is severe",
		},
		Causes: "Caused by the two-spotted spider mite (Tetranychus urticae)",
		Prevention: []string{
			"Maintain adequate humidity levels",
			"Spray plants with water to disrupt spider mites",
			"Monitor plant undersides regularly",
			"Avoid excessive nitrogen fertilizer",
		},
		Treatment: []string{
			"Spray with strong stream of water daily",
			"Apply insecticidal soap or neem oil",
			"Use miticides if infestation is severe",
			"Increase humidity around plants",
		},
	},
	{
		Key:         "target spot",
		Name:        "Target Spot",
		Description: "Target spot is a fungal disease causing concentric circular lesions on leaves.",
		Symptoms: []string{
			"Circular lesions with concentric rings",
			"Dark brown outer ring with lighter center",
			"Yellow halo around the spots",
			"Affects leaves at all heights of the plant",
		},
		Causes: "Caused by the fungus Corynespora cassiicola",
		Prevention: []string{
			"Use resistant varieties",
			"Maintain good air circulation",
			"Remove infected leaves promptly",
			"Avoid overhead watering",
		},
		Treatment: []string{
			"Apply fungicides like mancozeb or chlorothalonil",
			"Remove infected leaves",
			"Improve ventilation around plants",
			"Apply preventive sprays during humid periods",
		},
	},
	{
		Key:         "tomato mosaic virus",
		Name:        "Tomato Mosaic Virus",
		Description: "Tomato mosaic virus causes mottling and distortion of leaves and fruit.",
		Symptoms: []string{
			"Mottled, light and dark green pattern on leaves",
			"Leaf distortion and curling",
			"Yellow spots and stripes on leaves",
			"Stunted growth and reduced fruit production",
		},
		Causes: "Caused by the Tomato Mosaic Virus (ToMV) transmitted by contact or contaminated tools",
		Prevention: []string{
			"Use resistant varieties (marked TMV-resistant)",
			"Sanitize tools before working with plants",
			"Avoid handling plants when leaves are wet",
			"Remove weeds that may carry the virus",
		},
		Treatment: []string{
			"Remove and destroy infected plants",
			"Sanitize all tools and equipment",
			"Wash hands before working with healthy plants",
			"No chemical treatment available - prevention is key",
		},
	},
	{
		Key:         "tomato yellow leaf curl virus",
		Name:        "Tomato Yellow Leaf Curl Virus",
		Description: "Tomato yellow leaf curl virus causes yellowing and curling of young leaves.",
		Symptoms: []string{
			"Young leaves curl upward",
			"Leaves become yellow and brittle",
			"Stunted growth and wilting",
			"Reduced or no fruit production",
		},
		Causes: "Caused by Tomato Yellow Leaf Curl Virus (TYLCV), primarily transmitted by whiteflies",
		Prevention: []string{
			"Use virus-resistant varieties",
			"Control whitefly populations with insecticides",
			"Use row covers on young plants",
			"Remove infected plants immediately",
		},
		Treatment: []string{
			"Remove and destroy infected plants",
			"Control whitefly populations with appropriate insecticides",
			"Apply reflective mulches to confuse whiteflies",
			"No cure exists - focus on prevention",
		},
	},
}
