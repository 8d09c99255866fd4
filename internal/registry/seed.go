package registry

import (
	"time"

	"or-control-backend/internal/models"
)

func anest(name string) *models.Staff {
	return &models.Staff{Name: name, Role: "ANESTHESIOLOGIST"}
}

// SeedRooms is the fixed surgical block dataset the registry starts from.
// Only room 1 begins mid-procedure with an estimated end two hours out.
func SeedRooms(now time.Time) []models.Room {
	endRoom1 := now.Add(2 * time.Hour)

	return []models.Room{
		{
			ID: "1", Name: "Sál č. 1", Department: "TRA",
			CurrentStepIndex: 2, Operations24h: 4,
			EstimatedEndTime: &endRoom1,
			Staff: models.RoomStaff{
				Doctor:           models.Staff{Name: "MUDr. Procházka", Role: "DOCTOR"},
				Nurse:            models.Staff{Name: "Bc. Veselá", Role: "NURSE"},
				Anesthesiologist: anest("MUDr. Jelínek"),
			},
			CurrentPatient:   &models.Patient{Name: "Eva Nováková", ID: "755210/5678", Age: 48, BloodType: "B-"},
			CurrentProcedure: &models.Procedure{Name: "Artroskopie ramene", StartTime: "08:00", EstimatedDuration: 120, Progress: 75},
		},
		{
			ID: "2", Name: "Sál č. 2", Department: "CHIR",
			CurrentStepIndex: 3, Operations24h: 6,
			Staff: models.RoomStaff{
				Doctor:           models.Staff{Name: "MUDr. Svoboda", Role: "DOCTOR"},
				Nurse:            models.Staff{Name: "Bc. Malá", Role: "NURSE"},
				Anesthesiologist: anest("MUDr. Černý"),
			},
			CurrentPatient:   &models.Patient{Name: "Jan Novotný", ID: "850102/1234", Age: 42, BloodType: "A+"},
			CurrentProcedure: &models.Procedure{Name: "Laparoskopická cholecystektomie", StartTime: "10:00", EstimatedDuration: 90, Progress: 90},
		},
		{
			ID: "3", Name: "Sál č. 3", Department: "TRA",
			CurrentStepIndex: 6, Operations24h: 3,
			Staff: models.RoomStaff{
				Doctor:           models.Staff{Name: "MUDr. Kučera", Role: "DOCTOR"},
				Nurse:            models.Staff{Name: "Bc. Horáková", Role: "NURSE"},
				Anesthesiologist: anest("MUDr. Černý"),
			},
			CurrentPatient:   &models.Patient{Name: "Pavel Černý", ID: "680315/4321", Age: 56, BloodType: "O+"},
			CurrentProcedure: &models.Procedure{Name: "Náhrada kyčelního kloubu", StartTime: "09:30", EstimatedDuration: 180},
		},
		{
			ID: "4", Name: "Sál č. 4", Department: "CHIR",
			CurrentStepIndex: 6, Operations24h: 5,
			Staff: models.RoomStaff{
				Doctor:           models.Staff{Name: "MUDr. Zeman", Role: "DOCTOR"},
				Nurse:            models.Staff{Name: "Bc. Králová", Role: "NURSE"},
				Anesthesiologist: anest("MUDr. Kovář"),
			},
			CurrentPatient:   &models.Patient{Name: "Lucie Bílá", ID: "905525/6789", Age: 33, BloodType: "A-"},
			CurrentProcedure: &models.Procedure{Name: "Operace štítné žlázy", StartTime: "11:00", EstimatedDuration: 150},
		},
		{
			ID: "5", Name: "Sál č. 5", Department: "CHIR",
			CurrentStepIndex: 6, Operations24h: 2,
			Staff: models.RoomStaff{
				Doctor:           models.Staff{Name: "MUDr. Svoboda", Role: "DOCTOR"},
				Nurse:            models.Staff{Name: "Bc. Malá", Role: "NURSE"},
				Anesthesiologist: anest("MUDr. Marek"),
			},
			CurrentPatient:   &models.Patient{Name: "Karel Vorel", ID: "550101/1122", Age: 69, BloodType: "AB+"},
			CurrentProcedure: &models.Procedure{Name: "Bypass koronární arterie", StartTime: "07:45", EstimatedDuration: 360},
		},
		{
			ID: "6", Name: "DaVinci", Department: "ROBOT",
			CurrentStepIndex: 6, Operations24h: 3,
			Staff: models.RoomStaff{
				Doctor:           models.Staff{Name: "MUDr. Novák", Role: "DOCTOR"},
				Nurse:            models.Staff{Name: "Bc. Dvořáková", Role: "NURSE"},
				Anesthesiologist: anest("MUDr. Kovář"),
			},
			CurrentPatient:   &models.Patient{Name: "Petr Veselý", ID: "780515/9988", Age: 55, BloodType: "0-"},
			CurrentProcedure: &models.Procedure{Name: "Robotická prostatektomie", StartTime: "08:30", EstimatedDuration: 240},
		},
		{
			ID: "7", Name: "Sál č. 7", Department: "URO",
			CurrentStepIndex: 6, Operations24h: 4,
			Staff: models.RoomStaff{
				Doctor:           models.Staff{Name: "MUDr. Fiala", Role: "DOCTOR"},
				Nurse:            models.Staff{Name: "Bc. Pokorná", Role: "NURSE"},
				Anesthesiologist: anest("MUDr. Černý"),
			},
			CurrentPatient:   &models.Patient{Name: "Martin Dlouhý", ID: "820818/7766", Age: 41, BloodType: "O-"},
			CurrentProcedure: &models.Procedure{Name: "Nefrektomie", StartTime: "12:00", EstimatedDuration: 200},
		},
		{
			ID: "8", Name: "Sál č. 8", Department: "ORL",
			CurrentStepIndex: 6, Operations24h: 8,
			Staff: models.RoomStaff{
				Doctor:           models.Staff{Name: "MUDr. Krátký", Role: "DOCTOR"},
				Nurse:            models.Staff{Name: "Bc. Jelínková", Role: "NURSE"},
				Anesthesiologist: anest("MUDr. Kovář"),
			},
			CurrentPatient:   &models.Patient{Name: "Jana Malá", ID: "056012/3344", Age: 18, BloodType: "A+"},
			CurrentProcedure: &models.Procedure{Name: "Tonzilektomie", StartTime: "13:00", EstimatedDuration: 60},
		},
		{
			ID: "9", Name: "Sál č. 9", Department: "CÉVNÍ",
			CurrentStepIndex: 6, Operations24h: 4,
			Staff: models.RoomStaff{
				Doctor:           models.Staff{Name: "MUDr. Beneš", Role: "DOCTOR"},
				Nurse:            models.Staff{Name: "Bc. Dvořáková", Role: "NURSE"},
				Anesthesiologist: anest("MUDr. Veselý"),
			},
			CurrentPatient:   &models.Patient{Name: "František Vlk", ID: "491102/4455", Age: 74, BloodType: "B+"},
			CurrentProcedure: &models.Procedure{Name: "Endarterektomie karotidy", StartTime: "10:30", EstimatedDuration: 120},
		},
		{
			ID: "10", Name: "Sál č. 10", Department: "HPB + PLICNÍ",
			CurrentStepIndex: 6, Operations24h: 3,
			Staff: models.RoomStaff{
				Doctor:           models.Staff{Name: "MUDr. Horáková", Role: "DOCTOR"},
				Nurse:            models.Staff{Name: "Bc. Králová", Role: "NURSE"},
				Anesthesiologist: anest("MUDr. Kovář"),
			},
			CurrentPatient:   &models.Patient{Name: "Jana Rychlá", ID: "505101/0011", Age: 73, BloodType: "B+"},
			CurrentProcedure: &models.Procedure{Name: "Resekce jater", StartTime: "09:15", EstimatedDuration: 300},
		},
		{
			ID: "11", Name: "Sál č. 11", Department: "DĚTSKÉ",
			CurrentStepIndex: 6, Operations24h: 9,
			Staff: models.RoomStaff{
				Doctor:           models.Staff{Name: "MUDr. Růžička", Role: "DOCTOR"},
				Nurse:            models.Staff{Name: "Bc. Holá", Role: "NURSE"},
				Anesthesiologist: anest("MUDr. Marek"),
			},
			CurrentPatient:   &models.Patient{Name: "Anna Poláková", ID: "185405/7890", Age: 5, BloodType: "O+"},
			CurrentProcedure: &models.Procedure{Name: "Operace tříselné kýly", StartTime: "14:00", EstimatedDuration: 45},
		},
		{
			ID: "12", Name: "Sál č. 12", Department: "MAMMO",
			CurrentStepIndex: 6, Operations24h: 7,
			Staff: models.RoomStaff{
				Doctor:           models.Staff{Name: "MUDr. Horáková", Role: "DOCTOR"},
				Nurse:            models.Staff{Name: "Bc. Nová", Role: "NURSE"},
				Anesthesiologist: anest("MUDr. Jelínek"),
			},
			CurrentPatient:   &models.Patient{Name: "Marie Kopecká", ID: "655903/1212", Age: 58, BloodType: "A+"},
			CurrentProcedure: &models.Procedure{Name: "Lumpektomie", StartTime: "08:45", EstimatedDuration: 90},
		},
	}
}
