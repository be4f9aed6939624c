package repository

import (
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/domain"
)

func writeTestPng(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func setupLayerDir(t *testing.T) string {
	t.Helper()
	root, err := ioutil.TempDir("", "layers")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(root) })

	bodyDir := filepath.Join(root, "landevo_layers", "Body")
	require.NoError(t, os.MkdirAll(bodyDir, 0755))
	writeTestPng(t, filepath.Join(bodyDir, "Miami Blue Clean#10.png"), color.RGBA{0, 0, 255, 255})
	writeTestPng(t, filepath.Join(bodyDir, "Miami Blue Carbon#5.png"), color.RGBA{0, 0, 128, 255})

	washedDir := filepath.Join(root, "landevo_layers", "Washed")
	require.NoError(t, os.MkdirAll(washedDir, 0755))
	writeTestPng(t, filepath.Join(washedDir, "Washed.png"), color.RGBA{255, 255, 255, 255})

	return root
}

func Test_layerFsRepo_Layer(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	repo := NewLayerFsRepo(setupLayerDir(t))

	// weight suffix is not part of the trait value
	img, err := repo.Layer(ctx, domain.FamilyLandevo, "Body", "Miami Blue Clean")
	req.NoError(err)
	req.Equal(image.Rect(0, 0, 4, 4), img.Bounds())

	// reading again hits the byte cache and still decodes
	img, err = repo.Layer(ctx, domain.FamilyLandevo, "Body", "Miami Blue Clean")
	req.NoError(err)
	req.NotNil(img)
}

func Test_layerFsRepo_Layer_missingTrait(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	repo := NewLayerFsRepo(setupLayerDir(t))

	_, err := repo.Layer(ctx, domain.FamilyLandevo, "Body", "Some Unknown Color")
	req.Equal(domain.ErrAssetNotFound, err)

	_, err = repo.Layer(ctx, domain.FamilyLandevo, "NoSuchCategory", "Miami Blue Clean")
	req.Equal(domain.ErrAssetNotFound, err)
}

func Test_layerFsRepo_WashedStamp(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	repo := NewLayerFsRepo(setupLayerDir(t))

	img, err := repo.WashedStamp(ctx, domain.FamilyLandevo)
	req.NoError(err)
	req.NotNil(img)
}
