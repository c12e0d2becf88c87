package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"seosync/internal/services/huggingface"
	"seosync/internal/services/shopify"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeShopify records every write issued through the ShopifyAPI interface and
// returns canned data for reads.
type fakeShopify struct {
	latestProduct *shopify.Product
	latestErr     error

	metafields    []shopify.Metafield
	metafieldsErr error

	contentErr error
	imagesErr  error
	tagsErr    error

	contentCalls []contentCall
	imageCalls   []imageCall
	tagCalls     []tagCall
}

type contentCall struct {
	productID  int64
	bodyHTML   string
	metafields []shopify.Metafield
}

type imageCall struct {
	productID int64
	images    []shopify.ImageUpdate
}

type tagCall struct {
	productID int64
	tags      string
}

func (f *fakeShopify) GetLatestProduct() (*shopify.Product, error) {
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	return f.latestProduct, nil
}

func (f *fakeShopify) GetProductMetafields(productID int64) ([]shopify.Metafield, error) {
	if f.metafieldsErr != nil {
		return nil, f.metafieldsErr
	}
	return f.metafields, nil
}

func (f *fakeShopify) UpdateProductContent(productID int64, bodyHTML string, metafields []shopify.Metafield) error {
	f.contentCalls = append(f.contentCalls, contentCall{productID, bodyHTML, metafields})
	return f.contentErr
}

func (f *fakeShopify) UpdateProductImages(productID int64, images []shopify.ImageUpdate) error {
	f.imageCalls = append(f.imageCalls, imageCall{productID, images})
	return f.imagesErr
}

func (f *fakeShopify) UpdateProductTags(productID int64, tags string) error {
	f.tagCalls = append(f.tagCalls, tagCall{productID, tags})
	return f.tagsErr
}

func (f *fakeShopify) writeCount() int {
	return len(f.contentCalls) + len(f.imageCalls) + len(f.tagCalls)
}

type fakeClassifier struct {
	result *huggingface.Classification
	err    error

	inputs []string
	labels [][]string
}

func (f *fakeClassifier) Classify(input string, candidateLabels []string) (*huggingface.Classification, error) {
	f.inputs = append(f.inputs, input)
	f.labels = append(f.labels, candidateLabels)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func performRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
