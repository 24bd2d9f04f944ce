package refdata

import "github.com/meddent-dev/booking/backend/internal/domain"

// Static clinic data. Weekday numbers follow time.Weekday (0=Sun .. 6=Sat).

var clinics = []domain.Clinic{
	{
		ID: "downtown", Name: "MedDent Downtown", ShortName: "Downtown",
		Address: "42 Park Street, Downtown", Phone: "+1 (555) 100-2000",
		Rooms: []domain.Room{
			{ID: "R1", Name: "Room 1", Label: "General Suite",
				Capabilities: []string{"general", "triage", "cleaning", "filling", "consult", "xray"}},
			{ID: "R2", Name: "Room 2", Label: "Endo Suite",
				Capabilities: []string{"endodontics", "root_canal", "microscope", "xray", "consult"}},
			{ID: "R4", Name: "Room 4", Label: "Surgical Suite",
				Capabilities: []string{"oral_surgery", "extraction", "sedation", "iv_sedation", "consult"}},
		},
	},
	{
		ID: "westside", Name: "MedDent Westside", ShortName: "Westside",
		Address: "18 Oak Avenue, Westside", Phone: "+1 (555) 200-3000",
		Rooms: []domain.Room{
			{ID: "R1", Name: "Room 1", Label: "General Suite",
				Capabilities: []string{"general", "triage", "cleaning", "filling", "consult", "xray"}},
			{ID: "R4", Name: "Room 4", Label: "Surgical Suite",
				Capabilities: []string{"oral_surgery", "extraction", "sedation", "consult"}},
		},
	},
}

var specializations = []domain.Specialization{
	{ID: "general", Name: "General Dentistry", Color: "#4ECDC4"},
	{ID: "endodontics", Name: "Endodontics", Color: "#F7C653"},
	{ID: "oral_surgery", Name: "Oral Surgery", Color: "#FF6B6B"},
	{ID: "anesthesiology", Name: "Anesthesiology", Color: "#A78BFA"},
}

var doctors = []domain.Doctor{
	{
		ID: "dr_chen", Name: "Dr. Sarah Chen", Title: "BDS, MFGDP",
		Specializations: []string{"general"},
		Bio:             "10 years experience in general and preventive dentistry.",
		Availability: []domain.Availability{
			{ClinicID: "downtown", Days: []int{1, 2, 3, 4, 5}, StartHour: 9, EndHour: 17},
			{ClinicID: "westside", Days: []int{6}, StartHour: 9, EndHour: 13},
		},
	},
	{
		ID: "dr_patel", Name: "Dr. Raj Patel", Title: "BDS, FDS RCS",
		Specializations: []string{"general"},
		Bio:             "Specialist in restorative and cosmetic dentistry.",
		Availability: []domain.Availability{
			{ClinicID: "westside", Days: []int{1, 2, 3, 4, 5}, StartHour: 8, EndHour: 16},
			{ClinicID: "downtown", Days: []int{6}, StartHour: 9, EndHour: 14},
		},
	},
	{
		ID: "dr_morgan", Name: "Dr. Emma Morgan", Title: "BDS, MEndo, PhD",
		Specializations: []string{"endodontics"},
		Bio:             "Endodontic specialist with microscope-guided RCT expertise.",
		Availability: []domain.Availability{
			{ClinicID: "downtown", Days: []int{1, 3, 5}, StartHour: 10, EndHour: 18},
			{ClinicID: "westside", Days: []int{2, 4}, StartHour: 9, EndHour: 15},
		},
	},
	{
		ID: "dr_okafor", Name: "Dr. James Okafor", Title: "BDS, FDSRCS, MChD",
		Specializations: []string{"oral_surgery"},
		Bio:             "Oral and maxillofacial surgeon — wisdom teeth & implants.",
		Availability: []domain.Availability{
			{ClinicID: "downtown", Days: []int{2, 4}, StartHour: 8, EndHour: 16},
			{ClinicID: "westside", Days: []int{1, 3, 5}, StartHour: 9, EndHour: 17},
		},
	},
	{
		ID: "dr_silva", Name: "Dr. Ana Silva", Title: "MBBS, DA, FRCA",
		Specializations: []string{"anesthesiology"},
		Bio:             "Consultant anesthetist for IV sedation procedures.",
		Availability: []domain.Availability{
			{ClinicID: "downtown", Days: []int{2, 4}, StartHour: 8, EndHour: 16},
		},
	},
}

var procedures = []domain.Procedure{
	{
		ID: "emergency_triage", Name: "Emergency Triage", Duration: 15,
		RequiredSpecs:        []string{"general"},
		RequiredCapabilities: []string{"general", "triage"},
		Color:                "#FF6B6B", Description: "Urgent same/next-day pain or trauma assessment",
		Priority: "urgent", Note: "Room 1 (General Suite) only",
	},
	{
		ID: "general_checkup", Name: "General Checkup & Clean", Duration: 30,
		RequiredSpecs:        []string{"general"},
		RequiredCapabilities: []string{"general", "cleaning"},
		Color:                "#4ECDC4", Description: "Routine examination, x-ray and professional cleaning",
	},
	{
		ID: "filling", Name: "Tooth Filling", Duration: 45,
		RequiredSpecs:        []string{"general"},
		RequiredCapabilities: []string{"general", "filling"},
		Color:                "#38BDF8", Description: "Composite or amalgam restoration",
	},
	{
		ID: "rct_consult", Name: "Root Canal Consultation", Duration: 20,
		RequiredSpecs:        []string{"endodontics"},
		RequiredCapabilities: []string{"endodontics", "consult"},
		Color:                "#F7C653", Description: "Initial endodontic assessment",
		Note:                 "Room 2 (Endo Suite) required — microscope + X-ray available",
		FollowUp:             &domain.FollowUp{ProcedureID: "rct_treatment", Label: "Root Canal Treatment"},
	},
	{
		ID: "rct_treatment", Name: "Root Canal Treatment", Duration: 75,
		RequiredSpecs:        []string{"endodontics"},
		RequiredCapabilities: []string{"endodontics", "root_canal", "microscope", "xray"},
		Color:                "#FB923C", Description: "Full RCT: 60–90 min; microscope + X-ray mandatory",
		Note:                 "Room 2 only.",
	},
	{
		ID: "wisdom_consult", Name: "Wisdom Tooth Consultation", Duration: 15,
		RequiredSpecs:        []string{"oral_surgery"},
		RequiredCapabilities: []string{"oral_surgery", "consult"},
		Color:                "#C084FC", Description: "Assessment of impacted wisdom teeth",
		FollowUp:             &domain.FollowUp{ProcedureID: "wisdom_extraction", Label: "Wisdom Tooth Extraction"},
	},
	{
		ID: "wisdom_extraction", Name: "Wisdom Tooth Extraction", Duration: 75,
		RequiredSpecs:        []string{"oral_surgery"},
		RequiredCapabilities: []string{"oral_surgery", "extraction"},
		Color:                "#F87171", Description: "Surgical extraction — 60–90 min",
		Note:                 "Room 4 (Surgical Suite) at either clinic",
	},
	{
		ID: "wisdom_extraction_iv", Name: "Wisdom Extraction (IV Sedation)", Duration: 90,
		RequiredSpecs:        []string{"oral_surgery", "anesthesiology"},
		RequiredCapabilities: []string{"oral_surgery", "extraction", "iv_sedation"},
		Color:                "#EF4444", Description: "IV sedation extraction — oral surgeon + anesthetist",
		Note:                 "Downtown only (Room 4 has IV sedation). Dr. Okafor + Dr. Silva required.",
		RequiresAnesthetist:  true,
	},
}
