package common

// RefreshTokenCookieName is the cookie that carries the refresh token
// between the browser and the refresh endpoint.
const RefreshTokenCookieName = "refreshToken"
