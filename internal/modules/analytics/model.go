package analytics

// VisitorLog records one page view with best-effort geo enrichment.
// Field names match the documents already in the visitors collection.
type VisitorLog struct {
	ID              string  `json:"id" bson:"_id"`
	Hostname        string  `json:"hostname,omitempty" bson:"hostname,omitempty"`
	Origin          string  `json:"origin,omitempty" bson:"origin,omitempty"`
	Referrer        string  `json:"referrer,omitempty" bson:"referrer,omitempty"`
	IP              string  `json:"ip,omitempty" bson:"ip,omitempty"`
	Country         string  `json:"country,omitempty" bson:"country,omitempty"`
	Region          string  `json:"region,omitempty" bson:"region,omitempty"`
	City            string  `json:"city,omitempty" bson:"city,omitempty"`
	Postal          string  `json:"postal,omitempty" bson:"postal,omitempty"`
	Timezone        string  `json:"timezone,omitempty" bson:"timezone,omitempty"`
	UserAgent       string  `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	Browser         string  `json:"browser,omitempty" bson:"browser,omitempty"`
	Device          string  `json:"device,omitempty" bson:"device,omitempty"`
	OS              string  `json:"os,omitempty" bson:"os,omitempty"`
	Page            string  `json:"page,omitempty" bson:"page,omitempty"`
	Latitude        float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude       float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Accuracy        float64 `json:"accuracy,omitempty" bson:"accuracy,omitempty"`
	GrantedLocation bool    `json:"grantedLocation" bson:"grantedLocation"`
	Timestamp       string  `json:"timestamp" bson:"timestamp"`
}
