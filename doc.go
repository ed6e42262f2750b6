// Package imgbb is a typed client for the ImgBB image-hosting API.
//
// A Client holds the API key and connection configuration and is safe to
// share across concurrent operations. Images can be uploaded from a file
// path, a raw byte slice or an already base64-encoded string; all three are
// normalized to the same wire form before dispatch.
//
// One-shot upload:
//
//	client := imgbb.New(os.Getenv("IMGBB_API_KEY"))
//	resp, err := client.UploadFile(ctx, "cat.png")
//	if err != nil {
//		return err
//	}
//	fmt.Println(*resp.Data.URL)
//
// Incremental upload with metadata:
//
//	resp, err := client.NewUploader().
//		File("cat.png").
//		Name("cat").
//		Title("My Cat").
//		Album("album-id").
//		Expiration(86400).
//		Upload(ctx)
//
// Custom configuration:
//
//	cfg := imgbb.DefaultConfig()
//	cfg.Timeout = 10 * time.Second
//	cfg.UserAgent = "myapp/1.0"
//	client := imgbb.NewWithConfig(apiKey, cfg)
//
// Deleting a previously uploaded image:
//
//	err := client.Delete(ctx, *resp.Data.DeleteURL)
//
// Every failure is one of the package's typed errors; match kinds with
// errors.Is against the package sentinels, or errors.As against *Error for
// the HTTP status, service code and message.
package imgbb
