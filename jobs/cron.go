package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// OverdueMarker định nghĩa interface cho việc đánh dấu khoản thu quá hạn
type OverdueMarker interface {
	MarkOverdueTransactions() (int, error)
}

var overdueMarker OverdueMarker

// SetOverdueMarker thiết lập implementation cho OverdueMarker
func SetOverdueMarker(marker OverdueMarker) {
	overdueMarker = marker
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày: chuyển các khoản pending đã quá
	// hạn sang overdue. Hợp đồng hết hạn KHÔNG bị ghi đè trạng thái,
	// expired chỉ suy ra lúc đọc.
	_, err := c.AddFunc("0 0 * * *", func() {
		log.Printf("Đang quét khoản thu quá hạn lúc: %v", time.Now())
		if overdueMarker == nil {
			log.Printf("Lỗi: OverdueMarker chưa được thiết lập")
			return
		}
		changed, err := overdueMarker.MarkOverdueTransactions()
		if err != nil {
			log.Printf("Lỗi khi quét khoản thu quá hạn: %v", err)
			return
		}
		log.Printf("Đã chuyển %d khoản thu sang overdue", changed)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
