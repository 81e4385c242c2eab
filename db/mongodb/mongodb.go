package mongodb

import (
	"context"
	"movie_watchlist/configs"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDatabase struct {
	Db     *mongo.Database
	client *mongo.Client
}

func NewDatabase() (*MongoDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Client().ApplyURI(configs.GetConfigs().MongodbDatabaseUrl)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &MongoDatabase{
		client: client,
		Db:     client.Database(configs.GetConfigs().MongodbDatabaseName),
	}, nil
}

func (d *MongoDatabase) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

func (d *MongoDatabase) GetDB() *mongo.Database {
	return d.Db
}
