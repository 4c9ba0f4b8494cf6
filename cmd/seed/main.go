package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medroute/hospital-finder/internal/adapters/database"
	"github.com/medroute/hospital-finder/internal/domain/entities"
	"github.com/medroute/hospital-finder/internal/infrastructure/clients/postgres"
	"github.com/medroute/hospital-finder/pkg/config"
)

const hospitalsSchema = `
CREATE TABLE IF NOT EXISTS hospitals (
	id VARCHAR(36) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	address TEXT NOT NULL DEFAULT '',
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	phone_number VARCHAR(50) NOT NULL DEFAULT '',
	email VARCHAR(255) NOT NULL DEFAULT '',
	rating DOUBLE PRECISION NOT NULL DEFAULT 0,
	review_count INTEGER NOT NULL DEFAULT 0,
	has_emergency BOOLEAN NOT NULL DEFAULT FALSE,
	has_ambulance BOOLEAN NOT NULL DEFAULT FALSE,
	specialties TEXT NOT NULL DEFAULT '',
	facilities TEXT NOT NULL DEFAULT '',
	open_247 BOOLEAN NOT NULL DEFAULT FALSE,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_hospitals_active ON hospitals (is_active);
CREATE INDEX IF NOT EXISTS idx_hospitals_emergency ON hospitals (has_emergency, open_247);
`

type seedHospital struct {
	name         string
	lat, lon     float64
	address      string
	phone        string
	email        string
	rating       float64
	reviews      int
	hasEmergency bool
	hasAmbulance bool
	specialties  string
	facilities   string
	open247      bool
}

// Sample hospitals for Visakhapatnam and surrounding areas.
var sampleHospitals = []seedHospital{
	{"Seven Hills Hospital", 17.7231, 83.3008, "Rockdale Layout, Visakhapatnam, AP 530002",
		"+91-891-2790000", "info@sevenhillshospital.com", 4.5, 1250, true, true,
		"Cardiology,Neurology,Orthopedics,Emergency Medicine,ICU,Oncology,Gastroenterology",
		"ICU,CT Scan,MRI,24/7 Lab,Pharmacy,Blood Bank,Ambulance", true},

	{"Queen's NRI Hospital", 17.7456, 83.3161, "Health City, Visakhapatnam, AP 530013",
		"+91-891-6677000", "contact@queensnrihospital.com", 4.6, 2100, true, true,
		"Cardiology,Neurosurgery,Orthopedics,Nephrology,Gastroenterology,Oncology,Emergency Medicine",
		"ICU,NICU,Cath Lab,CT Scan,MRI,24/7 Pharmacy,Blood Bank", true},

	{"Visakha Institute of Medical Sciences (VIMS)", 17.7133, 83.3123, "Near Steel Plant, Visakhapatnam, AP 530017",
		"+91-891-2714141", "info@vimshospital.com", 4.3, 980, true, true,
		"Emergency Medicine,General Medicine,Surgery,Orthopedics,Pediatrics,Obstetrics & Gynecology",
		"Emergency,ICU,Operation Theater,X-Ray,Ultrasound,Lab,Pharmacy", true},

	{"Apollo Hospitals", 17.7523, 83.3231, "Waltair Main Road, Visakhapatnam, AP 530002",
		"+91-891-2777000", "vizag@apollohospitals.com", 4.7, 3200, true, true,
		"Cardiology,Neurology,Oncology,Orthopedics,Gastroenterology,Nephrology,Emergency Medicine,Pediatrics",
		"ICU,NICU,PICU,Cath Lab,CT Scan,MRI,PET Scan,24/7 Lab,Blood Bank,Ambulance", true},

	{"KIMS ICON Hospital", 17.7312, 83.3034, "Visakhapatnam, AP 530002",
		"+91-891-6699000", "info@kimsicon.com", 4.4, 1560, true, true,
		"Cardiology,Neurology,Orthopedics,Oncology,Nephrology,Gastroenterology,Pulmonology",
		"ICU,CT Scan,MRI,Dialysis,24/7 Emergency,Pharmacy,Blood Bank", true},

	{"Care Hospital", 17.7189, 83.3045, "Ramnagar, Visakhapatnam, AP 530002",
		"+91-891-6689999", "vizag@carehospitals.com", 4.5, 1890, true, true,
		"Cardiology,Neurology,Orthopedics,Gastroenterology,Pulmonology,Emergency Medicine",
		"ICU,CCU,Operation Theater,CT Scan,MRI,Lab,Pharmacy,Ambulance", true},

	{"Medicover Hospitals", 17.7289, 83.3156, "MVP Colony, Visakhapatnam, AP 530017",
		"+91-891-4888999", "vizag@medicoverhospitals.in", 4.3, 1120, true, true,
		"General Medicine,Surgery,Orthopedics,Pediatrics,Obstetrics & Gynecology,ENT,Dermatology",
		"ICU,Operation Theater,X-Ray,Ultrasound,Lab,Pharmacy,24/7 Emergency", true},

	{"Ramesh Hospitals", 17.7412, 83.3201, "Visakhapatnam, AP 530013",
		"+91-891-2577777", "info@rameshhospitals.com", 4.2, 890, true, true,
		"Cardiology,Neurology,Nephrology,Urology,Gastroenterology,Pulmonology,Diabetology",
		"ICU,Dialysis,CT Scan,Lab,Pharmacy,Emergency,Ambulance", true},

	{"Indus Hospital", 17.7201, 83.3189, "Siripuram, Visakhapatnam, AP 530003",
		"+91-891-2566666", "contact@indushospital.com", 4.1, 670, true, true,
		"General Medicine,Surgery,Orthopedics,Pediatrics,ENT,Ophthalmology",
		"Emergency,X-Ray,Ultrasound,Lab,Pharmacy", true},

	{"Kalyani Hospital", 17.7378, 83.3267, "Akkayyapalem, Visakhapatnam, AP 530016",
		"+91-891-2755555", "info@kalyanihospital.com", 4.0, 550, true, true,
		"General Medicine,Pediatrics,Obstetrics & Gynecology,Orthopedics,ENT",
		"Emergency,X-Ray,Ultrasound,Lab,Pharmacy,Maternity Ward", true},

	{"Sunrise Hospital", 17.7156, 83.2989, "Maddilapalem, Visakhapatnam, AP 530013",
		"+91-891-2888777", "info@sunrisehospital.in", 4.2, 780, true, true,
		"General Medicine,Surgery,Orthopedics,Pediatrics,Dermatology",
		"Emergency,ICU,Operation Theater,X-Ray,Lab,Pharmacy", true},

	{"Aditya Hospital", 17.7445, 83.3089, "Seethammadhara, Visakhapatnam, AP 530013",
		"+91-891-2733333", "contact@adityahospital.com", 4.3, 920, true, true,
		"Cardiology,Neurology,Orthopedics,General Medicine,Emergency Medicine",
		"ICU,CT Scan,X-Ray,Ultrasound,Lab,24/7 Emergency,Pharmacy", true},

	{"King George Hospital (KGH)", 17.7123, 83.3234, "KGH, Visakhapatnam, AP 530002",
		"+91-891-2734567", "kgh@ap.gov.in", 3.9, 1540, true, true,
		"General Medicine,Surgery,Orthopedics,Pediatrics,Obstetrics & Gynecology,Emergency Medicine,Infectious Disease",
		"Emergency,ICU,Operation Theater,X-Ray,Lab,Pharmacy,Blood Bank", true},

	{"Government Hospital for Chest and Communicable Diseases", 17.7098, 83.3178, "Visakhapatnam, AP 530002",
		"+91-891-2745678", "chesthospital@ap.gov.in", 3.7, 430, true, true,
		"Pulmonology,Infectious Disease,General Medicine,Emergency Medicine",
		"X-Ray,Lab,Pharmacy,Isolation Wards", true},

	{"Visakha Eye Hospital", 17.7267, 83.3123, "Visakhapatnam, AP 530002",
		"+91-891-2799999", "info@visakhaeye.com", 4.4, 1240, false, false,
		"Ophthalmology,Eye Surgery,Retina,Glaucoma,Pediatric Ophthalmology",
		"Operation Theater,Advanced Eye Testing,Optical Shop", false},

	{"Star Hospital - Multispeciality", 17.7334, 83.3145, "Dwaraka Nagar, Visakhapatnam, AP 530016",
		"+91-891-2766666", "info@starhospitalvizag.com", 4.2, 980, true, true,
		"Cardiology,Orthopedics,Neurology,General Surgery,Pediatrics,Obstetrics & Gynecology",
		"ICU,Operation Theater,CT Scan,X-Ray,Lab,Pharmacy,Emergency", true},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if _, err := pgClient.DB().ExecContext(ctx, hospitalsSchema); err != nil {
		log.Fatalf("Failed to create hospitals table: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating hospitals before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, "TRUNCATE TABLE hospitals"); err != nil {
			log.Fatalf("Failed to reset hospitals table: %v", err)
		}
	}

	var count int
	if err := pgClient.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM hospitals").Scan(&count); err != nil {
		log.Fatalf("Failed to count hospitals: %v", err)
	}
	if count > 0 {
		log.Printf("Hospitals table already has %d rows, nothing to do (set RESET_DB=true to reseed)", count)
		return
	}

	hospitalRepo := database.NewHospitalAdapter(pgClient)

	seeded := 0
	for _, h := range sampleHospitals {
		hospital := &entities.Hospital{
			ID:           uuid.New().String(),
			Name:         h.name,
			Address:      h.address,
			Location:     entities.Location{Latitude: h.lat, Longitude: h.lon},
			PhoneNumber:  h.phone,
			Email:        h.email,
			Rating:       h.rating,
			ReviewCount:  h.reviews,
			HasEmergency: h.hasEmergency,
			HasAmbulance: h.hasAmbulance,
			Specialties:  strings.Split(h.specialties, ","),
			Facilities:   strings.Split(h.facilities, ","),
			Open247:      h.open247,
			IsActive:     true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		if err := hospitalRepo.Create(ctx, hospital); err != nil {
			log.Printf("Failed to create hospital %s: %v", h.name, err)
			continue
		}
		seeded++
	}

	log.Printf("Seeded %d hospitals", seeded)
}
