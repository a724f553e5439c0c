package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tawdev/mahtaaj-sub005/internal/admin"
	"github.com/tawdev/mahtaaj-sub005/internal/auth"
	"github.com/tawdev/mahtaaj-sub005/internal/config"
	"github.com/tawdev/mahtaaj-sub005/internal/db"
	"github.com/tawdev/mahtaaj-sub005/internal/utils"
)

type seedItem struct {
	NameFR        string
	NameAR        string
	NameEN        string
	DescriptionFR string
	CategoryID    string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	items := []seedItem{
		{NameFR: "Nettoyage de Tapis", NameAR: "تنظيف السجاد", NameEN: "Carpet Cleaning", DescriptionFR: "Nettoyage en profondeur de vos tapis, tarif au mètre carré.", CategoryID: "tapis-canapes"},
		{NameFR: "Nettoyage de Canapés", NameAR: "تنظيف الأرائك", NameEN: "Sofa Cleaning", DescriptionFR: "Nettoyage de canapés et fauteuils à domicile.", CategoryID: "tapis-canapes"},
		{NameFR: "Tapis et Canapés", NameAR: "السجاد والأرائك", NameEN: "Carpets and Sofas", DescriptionFR: "Formule combinée tapis et canapés.", CategoryID: "tapis-canapes"},

		{NameFR: "Nettoyage Profond de Piscine", NameAR: "تنظيف عميق للمسبح", NameEN: "Pool Deep Cleaning", DescriptionFR: "Vidange, brossage et traitement complet du bassin.", CategoryID: "piscine"},
		{NameFR: "Entretien de Piscine", NameAR: "صيانة المسبح", NameEN: "Pool Maintenance", DescriptionFR: "Entretien régulier de votre piscine.", CategoryID: "piscine"},

		{NameFR: "Maison d'hôte", NameAR: "دار الضيافة", NameEN: "Guest House", DescriptionFR: "Ménage complet pour maisons d'hôtes, chambres et suites.", CategoryID: "menage"},
		{NameFR: "Ménage de Maison", NameAR: "تنظيف المنزل", NameEN: "House Cleaning", DescriptionFR: "Ménage complet de votre maison.", CategoryID: "menage"},
		{NameFR: "Ménage d'Appartement", NameAR: "تنظيف الشقة", NameEN: "Apartment Cleaning", DescriptionFR: "Ménage complet de votre appartement.", CategoryID: "menage"},
		{NameFR: "Ménage de Villa", NameAR: "تنظيف الفيلا", NameEN: "Villa Cleaning", DescriptionFR: "Ménage complet de votre villa.", CategoryID: "menage"},
		{NameFR: "Ménage d'Hôtel", NameAR: "تنظيف الفندق", NameEN: "Hotel Cleaning", DescriptionFR: "Ménage des chambres et parties communes d'hôtel.", CategoryID: "menage"},
		{NameFR: "Ménage d'Hôtel Resort", NameAR: "تنظيف فندق المنتجع", NameEN: "Resort Hotel Cleaning", DescriptionFR: "Ménage pour hôtels resort, chambres, suites et jardins.", CategoryID: "menage"},
		{NameFR: "Conseils d'entretien", NameAR: "", NameEN: "Care Tips", DescriptionFR: "Guide d'entretien de votre intérieur.", CategoryID: "menage"},

		{NameFR: "Repassage à Domicile", NameAR: "الكي في المنزل", NameEN: "Home Ironing", DescriptionFR: "Repassage à la pièce, chemises, pantalons, robes et plus.", CategoryID: "repassage"},
	}

	for _, item := range items {
		slug := utils.Slugify(item.NameFR)
		filter := bson.M{"slug": slug}
		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":           primitive.NewObjectID().Hex(),
				"nameFr":        item.NameFR,
				"nameAr":        item.NameAR,
				"nameEn":        item.NameEN,
				"descriptionFr": item.DescriptionFR,
				"categoryId":    item.CategoryID,
				"slug":          slug,
				"createdAt":     time.Now().In(cfg.Timezone),
			},
		}

		_, err := cols.CatalogItems.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			log.Fatalf("seed error for %s: %v", item.NameFR, err)
		}
	}

	if cfg.AdminPassword == "" {
		log.Printf("seed admin: ADMIN_PASSWORD missing, skipping %s", cfg.AdminUser)
	} else if err := seedAdminUser(ctx, cols, cfg.AdminUser, cfg.AdminEmail, cfg.AdminPassword, cfg.Timezone); err != nil {
		log.Fatalf("seed admin error for %s: %v", cfg.AdminUser, err)
	}

	log.Println("seed completed")
}

func seedAdminUser(ctx context.Context, cols *db.Collections, username, email, password string, loc *time.Location) error {
	if cols == nil || cols.Users == nil {
		return nil
	}
	if username == "" || password == "" {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	now := time.Now().In(loc)
	filter := bson.M{"username": username}
	set := bson.M{
		"passwordHash": hash,
		"role":         admin.RoleAdmin,
		"updatedAt":    now,
	}
	if email != "" {
		set["email"] = email
	}
	setOnInsert := bson.M{
		"_id":       primitive.NewObjectID().Hex(),
		"username":  username,
		"createdAt": now,
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": setOnInsert,
	}
	_, err = cols.Users.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
