package common

import (
	"mime/multipart"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/renzmar06/socialgolf-server/internal/pkg/uploader"
	"github.com/renzmar06/socialgolf-server/pkg/response"

	"github.com/gin-gonic/gin"
)

// UploadFile handles batch file uploads.
// @Summary Upload one or more files
// @Tags Common
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files"
// @Success 200 {object} response.Response{data=[]string} "URLs"
// @Router /upload [post]
func UploadFile(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid form data")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "no files uploaded")
		return
	}

	if uploader.GlobalUploader == nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "uploader not initialized")
		return
	}

	// Upload concurrently but keep the result order matching the
	// request order by writing into a preallocated slice.
	urls := make([]string, len(files))

	var wg sync.WaitGroup
	var errOnce sync.Once
	var failed atomic.Bool
	var uploadErr error

	// Cap concurrent uploads at 5.
	sem := make(chan struct{}, 5)

	for i, file := range files {
		wg.Add(1)
		go func(index int, f *multipart.FileHeader) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			// Skip remaining work once any upload has failed.
			if failed.Load() {
				return
			}

			url, err := uploader.GlobalUploader.UploadFile(f)
			if err != nil {
				errOnce.Do(func() {
					uploadErr = err
				})
				failed.Store(true)
				return
			}

			urls[index] = url
		}(i, file)
	}

	wg.Wait()

	if uploadErr != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "upload failed: "+uploadErr.Error())
		return
	}

	response.Success(c, urls)
}
