package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// StaticDir is the on-disk root served under /static
const StaticDir = "static"

// VersionedAssets are hashed at startup for cache busting
var VersionedAssets = []string{
	"css/site.css",
	"images/favicon.png",
	"js/carousel.js",
	"js/overlay.js",
}

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions() {
	assetVersionsOnce.Do(func() {
		assetVersions = computeAssetVersions(StaticDir, VersionedAssets)
		log.Printf("[INFO] Asset versions initialized: %d files", len(assetVersions))
	})
}

func computeAssetVersions(root string, assets []string) map[string]string {
	versions := make(map[string]string, len(assets))
	for _, asset := range assets {
		version := computeFileHash(filepath.Join(root, asset))
		if version == "" {
			version = "1"
		}
		versions[asset] = version
	}
	return versions
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	// First 8 chars are enough for cache busting
	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetAssetVersion returns the version hash of a static asset, "1" when unknown.
// ctx is accepted for consistency with the other template helpers; versions
// are process-wide.
func GetAssetVersion(ctx context.Context, asset string) string {
	if version, ok := assetVersions[asset]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the cache-busted public URL of a static asset
func AssetURL(ctx context.Context, asset string) string {
	return "/" + StaticDir + "/" + asset + "?v=" + GetAssetVersion(ctx, asset)
}
