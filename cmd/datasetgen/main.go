// datasetgen captures cropped face samples from the camera to build a
// training set for the LBPH identity classifier. Samples are written as
// 200x200 grayscale JPEGs named user.<id>.<sequence>.jpg.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"facelog/camera"
	"facelog/config"
	"facelog/db"
	"facelog/models"

	"gocv.io/x/gocv"
)

var (
	device  = flag.Int("device", config.CAMERA_DEVICE, "camera device id")
	cascade = flag.String("cascade", config.CASCADE_FILE, "Haar cascade file")
	id      = flag.Uint64("id", 0, "enrollment id (required)")
	name    = flag.String("name", "", "display name; when set, the person is (re)enrolled in the database")
	outDir  = flag.String("out", "data", "output directory for face samples")
	count   = flag.Int("count", 1000, "number of samples to capture")
)

const sampleSize = 200

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}
	if *name != "" {
		db.Init()
		models.Init()
		if err := models.EnrollPerson(*id, *name); err != nil {
			return err
		}
		log.Printf("Enrolled %q as id %d", *name, *id)
	}
	if err := os.MkdirAll(*outDir, 0777); err != nil {
		return err
	}

	cam, err := camera.OpenCamera(*device, config.FRAME_WIDTH, config.FRAME_HEIGHT, config.CAMERA_FPS)
	if err != nil {
		return err
	}
	defer cam.Close()

	locator, err := camera.NewLocator(*cascade)
	if err != nil {
		return err
	}
	defer locator.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	frame := gocv.NewMat()
	defer frame.Close()
	face := gocv.NewMat()
	defer face.Close()
	gray := gocv.NewMat()
	defer gray.Close()

	sequence := 0
	for sequence < *count {
		select {
		case <-stop:
			log.Printf("Stopped after %d samples", sequence)
			return nil
		default:
		}

		// Transient read failures and face-less frames are skipped.
		if ok := cam.Read(&frame); !ok || frame.Empty() {
			continue
		}
		box, found := locator.Locate(frame)
		if !found {
			continue
		}

		crop := frame.Region(box)
		gocv.Resize(crop, &face, image.Pt(sampleSize, sampleSize), 0, 0, gocv.InterpolationLinear)
		crop.Close()
		gocv.CvtColor(face, &gray, gocv.ColorBGRToGray)

		fileName := filepath.Join(*outDir, fmt.Sprintf("user.%d.%d.jpg", *id, sequence+1))
		if ok := gocv.IMWrite(fileName, gray); !ok {
			log.Printf("Failed to write %s", fileName)
			continue
		}
		sequence++
	}

	log.Printf("Collected %d samples in %s", sequence, *outDir)
	return nil
}
