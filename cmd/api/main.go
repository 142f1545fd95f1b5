package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/lanternml/cluster-core/internal/api/middleware"
	"github.com/lanternml/cluster-core/internal/api/routes"
	"github.com/lanternml/cluster-core/internal/application"
	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/clusterinfo"
	"github.com/lanternml/cluster-core/internal/config"
	"github.com/lanternml/cluster-core/internal/config/db"
	"github.com/lanternml/cluster-core/internal/cron"
	"github.com/lanternml/cluster-core/internal/domain/vc"
	"github.com/lanternml/cluster-core/internal/listcache"
	"github.com/lanternml/cluster-core/internal/repository"
	"github.com/lanternml/cluster-core/pkg/k8s"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()
	k8s.Init()

	repos := repository.New(db.DB)

	if config.VcSeedFile != "" {
		seedVCs(repos.VC)
	}

	acl := auth.NewAclChecker(db.DB, repository.NewIdentityRepo(db.DB))
	cache := listcache.New(repos.Job, config.PendingCacheTTL)
	services := application.New(repos, acl, acl, cache)

	// Start the background cluster status refresh
	collector := clusterinfo.NewCollector(k8s.Clientset)
	cron.StartClusterStatusTask(context.Background(), collector, repos.VC, config.ClusterStatusInterval)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, services)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

// seedVCs applies the boot VC definitions, skipping ones that already
// exist so restarts never clobber live quota edits.
func seedVCs(vcs vc.Repository) {
	seeds, err := config.LoadVcSeed(config.VcSeedFile)
	if err != nil {
		log.Fatalf("Failed to load VC seed file: %v", err)
	}

	existing, err := vcs.ListVCs()
	if err != nil {
		log.Fatalf("Failed to list VCs while seeding: %v", err)
	}
	known := map[string]bool{}
	for _, cluster := range existing {
		known[cluster.VcName] = true
	}

	for _, seed := range seeds {
		if known[seed.VcName] {
			continue
		}
		if err := vcs.AddVC(seed.VcName, seed.QuotaJSON(), seed.MetadataJSON()); err != nil {
			log.Fatalf("Failed to seed VC %s: %v", seed.VcName, err)
		}
		log.Printf("Seeded VC %s", seed.VcName)
	}
}
