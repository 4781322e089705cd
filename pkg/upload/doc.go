// Package upload posts local files to the model-parsing service as
// multipart/form-data and returns the raw response.
//
// # Usage
//
//	u := upload.New(http.DefaultClient, logger)
//
//	req := upload.ParseRequest(upload.DefaultServiceURL, upload.DefaultModelPath, -1)
//	resp, err := u.Upload(ctx, req)
//	if err != nil {
//	    return err
//	}
//	return resp.Print(os.Stdout)
//
// Every file part is opened before the request is sent, so a missing file
// fails with ErrFileNotFound without touching the network. Non-2xx
// responses are returned as-is; only transport failures are errors.
//
// # Version
//
// Current version: 1.0.0
package upload
