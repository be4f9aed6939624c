package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/base/database/mongoclient"
	"github.com/bitwhips/washapi/base/database/redisclient"
	"github.com/bitwhips/washapi/base/log"
	"github.com/bitwhips/washapi/base/metrics"
	bValidator "github.com/bitwhips/washapi/base/validator"
	mmiddleware "github.com/bitwhips/washapi/middleware"
	"github.com/bitwhips/washapi/service/discord"
	"github.com/bitwhips/washapi/service/ipfs"
	"github.com/bitwhips/washapi/service/query"
	"github.com/bitwhips/washapi/service/redis"
	solana_service "github.com/bitwhips/washapi/service/solana"
	carwash_delivery "github.com/bitwhips/washapi/stores/carwash/delivery/http"
	carwash_repository "github.com/bitwhips/washapi/stores/carwash/repository"
	carwash_usecase "github.com/bitwhips/washapi/stores/carwash/usecase"
	hc_delivery "github.com/bitwhips/washapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/bitwhips/washapi/stores/healthcheck/repository"
	hc_usecase "github.com/bitwhips/washapi/stores/healthcheck/usecase"
)

func init() {
	configPath := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			BitWhips Carwash API
//	@version		1.0
//	@description	API Document for the BitWhips carwash.
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	httpTimeout := viper.GetDuration("http.timeout")

	// init ipfs pinning
	context.Info("init ipfs")
	ipfsShell := ipfsapi.NewShell(viper.GetString("ipfs.endpoint"))
	contentStore := ipfs.New(ipfsShell, viper.GetString("ipfs.gateway"), httpTimeout)

	// init discord notifier
	notifier := discord.New(discord.Config{
		BotKey:          viper.GetString("discord.botKey"),
		ChannelId:       viper.GetString("discord.channelId"),
		UrgentChannelId: viper.GetString("discord.urgentChannelId"),
		UrgentMention:   viper.GetString("discord.urgentMention"),
	})

	// init solana rpc reader and the treasury signer sidecar
	chainReader := solana_service.New(solana_service.ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   viper.GetString("solana.rpcUrl"),
		Timeout:    httpTimeout,
	})
	chainSigner := solana_service.NewSigner(solana_service.ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   viper.GetString("solana.signerUrl"),
		Timeout:    httpTimeout,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	counterRepo := carwash_repository.NewCounterRepo(q)
	metadataRepo := carwash_repository.NewMetadataCacheRepo(q)
	layerRepo := carwash_repository.NewLayerFsRepo(viper.GetString("carwash.layerRoot"))
	lockRepo := carwash_repository.NewWashLockRepo(redisCache, viper.GetDuration("carwash.lockTTL"))
	offchainResolver := carwash_repository.NewOffchainHttpResolver(http.Client{}, httpTimeout)

	hc := hc_usecase.New(hcRepo)
	carwash := carwash_usecase.New(carwash_usecase.Config{
		Counter:         counterRepo,
		Metadata:        metadataRepo,
		Layers:          layerRepo,
		Locks:           lockRepo,
		Offchain:        offchainResolver,
		Chain:           chainReader,
		Signer:          chainSigner,
		Content:         contentStore,
		Notifier:        notifier,
		Met:             metrics.New("carwash"),
		PaymentAmount:   viper.GetUint64("carwash.paymentAmount"),
		PaymentDecimals: viper.GetInt32("carwash.paymentDecimals"),
	})

	hc_delivery.New(e, hc)
	carwash_delivery.New(e, carwash)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
