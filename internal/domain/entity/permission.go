package entity

// Permission is a capability the user grants to the app.
// Some are Android runtime permissions, others are special access (root, Shizuku, device admin).
type Permission string

const (
	PermissionWriteSettings             Permission = "WRITE_SETTINGS"
	PermissionCamera                    Permission = "CAMERA"
	PermissionDeviceAdmin               Permission = "DEVICE_ADMIN"
	PermissionReadPhoneState            Permission = "READ_PHONE_STATE"
	PermissionAccessNotificationPolicy  Permission = "ACCESS_NOTIFICATION_POLICY"
	PermissionWriteSecureSettings       Permission = "WRITE_SECURE_SETTINGS"
	PermissionNotificationListener      Permission = "NOTIFICATION_LISTENER"
	PermissionCallPhone                 Permission = "CALL_PHONE"
	PermissionRoot                      Permission = "ROOT"
	PermissionIgnoreBatteryOptimisation Permission = "IGNORE_BATTERY_OPTIMISATION"
	PermissionShizuku                   Permission = "SHIZUKU"
	PermissionAccessFineLocation        Permission = "ACCESS_FINE_LOCATION"
	PermissionAnswerPhoneCall           Permission = "ANSWER_PHONE_CALL"
	PermissionFindNearbyDevices         Permission = "FIND_NEARBY_DEVICES"
)

// AllPermissions lists every known permission in declaration order.
var AllPermissions = []Permission{
	PermissionWriteSettings,
	PermissionCamera,
	PermissionDeviceAdmin,
	PermissionReadPhoneState,
	PermissionAccessNotificationPolicy,
	PermissionWriteSecureSettings,
	PermissionNotificationListener,
	PermissionCallPhone,
	PermissionRoot,
	PermissionIgnoreBatteryOptimisation,
	PermissionShizuku,
	PermissionAccessFineLocation,
	PermissionAnswerPhoneCall,
	PermissionFindNearbyDevices,
}

// IsKnownPermission reports whether p is one of AllPermissions.
func IsKnownPermission(p Permission) bool {
	for _, known := range AllPermissions {
		if known == p {
			return true
		}
	}
	return false
}

// SystemFeature is an Android package manager feature string.
type SystemFeature string

const (
	SystemFeatureCameraFlash SystemFeature = "android.hardware.camera.flash"
	SystemFeatureNfc         SystemFeature = "android.hardware.nfc"
	SystemFeatureTelephony   SystemFeature = "android.hardware.telephony"
	SystemFeatureWifi        SystemFeature = "android.hardware.wifi"
	SystemFeatureBluetooth   SystemFeature = "android.hardware.bluetooth"
	SystemFeatureDeviceAdmin SystemFeature = "android.software.device_admin"
)

// AllSystemFeatures lists the features action metadata refers to.
var AllSystemFeatures = []SystemFeature{
	SystemFeatureCameraFlash,
	SystemFeatureNfc,
	SystemFeatureTelephony,
	SystemFeatureWifi,
	SystemFeatureBluetooth,
	SystemFeatureDeviceAdmin,
}
