// Package mongodb owns the MongoDB client for Shallerhub.
//
// Call Connect once at boot, then grab collection handles anywhere:
//
//	if err := mongodb.Connect(); err != nil { ... }
//	defer mongodb.Disconnect()
//
//	col := mongodb.Collection("vendor_logins")
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/shallerhub/config"
)

// Collection names used across the repositories.
const (
	ColAdmins     = "admins"
	ColVendors    = "vendor_logins"
	ColUsers      = "users"
	ColCategories = "categories"
	ColItems      = "items"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect dials MongoDB using MONGO_URI / MONGO_DB from config and verifies
// the connection with a ping. Safe to call from every cobra command.
func Connect() error {
	if client != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(50)

	c, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("mongodb: connect: %w", err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("mongodb: ping: %w", err)
	}

	client = c
	db = c.Database(config.MongoDB())
	return nil
}

// Disconnect closes the client. Safe to call when Connect never succeeded.
func Disconnect() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
	client = nil
	db = nil
}

// DB returns the application database handle.
// Panics if Connect has not been called — that is a programming error.
func DB() *mongo.Database {
	if db == nil {
		panic("mongodb: DB() called before Connect()")
	}
	return db
}

// Collection returns a handle for the named collection.
func Collection(name string) *mongo.Collection {
	return DB().Collection(name)
}
